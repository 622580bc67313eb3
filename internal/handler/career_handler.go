package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/service"
	"github.com/trackademic/trackademic-api/internal/utils"
)

// CareerHandler wires job and internship application HTTP routes.
type CareerHandler struct {
	service service.CareerService
	logger  zerolog.Logger
}

// NewCareerHandler constructs the handler.
func NewCareerHandler(service service.CareerService, logger zerolog.Logger) *CareerHandler {
	return &CareerHandler{
		service: service,
		logger:  logger.With().Str("component", "career_handler").Logger(),
	}
}

// Register attaches application endpoints to the router group.
func (h *CareerHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *CareerHandler) list(c *fiber.Ctx) error {
	applications, err := h.service.List(c.Context(), ownerIDFromContext(c), c.Query("status"))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "applications retrieved", applications)
}

func (h *CareerHandler) create(c *fiber.Ctx) error {
	var payload dto.ApplicationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	application, err := h.service.Create(c.Context(), ownerIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "application created", application)
}

func (h *CareerHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ApplicationUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	application, err := h.service.Update(c.Context(), ownerIDFromContext(c), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "application updated", application)
}

func (h *CareerHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), ownerIDFromContext(c), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "application deleted", fiber.Map{"id": id})
}

func (h *CareerHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "application not found")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *CareerHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
