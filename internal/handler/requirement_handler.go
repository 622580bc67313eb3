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

// RequirementHandler wires degree requirement HTTP routes for the core,
// major, and minor checklists.
type RequirementHandler struct {
	service service.RequirementService
	logger  zerolog.Logger
}

// NewRequirementHandler constructs the handler.
func NewRequirementHandler(service service.RequirementService, logger zerolog.Logger) *RequirementHandler {
	return &RequirementHandler{
		service: service,
		logger:  logger.With().Str("component", "requirement_handler").Logger(),
	}
}

// Register attaches requirement endpoints to the router group.
func (h *RequirementHandler) Register(router fiber.Router) {
	core := router.Group("/core")
	core.Get("", h.listCore)
	core.Post("", h.createCore)
	core.Patch("/:id", h.updateCore)
	core.Delete("/:id", h.deleteCore)

	major := router.Group("/major")
	major.Get("", h.listMajor)
	major.Post("", h.createMajor)
	major.Patch("/:id", h.updateMajor)
	major.Delete("/:id", h.deleteMajor)

	minor := router.Group("/minor")
	minor.Get("", h.listMinor)
	minor.Post("", h.createMinor)
	minor.Patch("/:id", h.updateMinor)
	minor.Delete("/:id", h.deleteMinor)
}

func (h *RequirementHandler) listCore(c *fiber.Ctx) error {
	rows, err := h.service.ListCore(c.Context(), ownerIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "core requirements retrieved", rows)
}

func (h *RequirementHandler) createCore(c *fiber.Ctx) error {
	var payload dto.CoreRequirementCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	row, err := h.service.CreateCore(c.Context(), ownerIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "core requirement created", row)
}

func (h *RequirementHandler) updateCore(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.CoreRequirementUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	row, err := h.service.UpdateCore(c.Context(), ownerIDFromContext(c), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "core requirement updated", row)
}

func (h *RequirementHandler) deleteCore(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteCore(c.Context(), ownerIDFromContext(c), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "core requirement deleted", fiber.Map{"id": id})
}

func (h *RequirementHandler) listMajor(c *fiber.Ctx) error {
	rows, err := h.service.ListMajor(c.Context(), ownerIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "major requirements retrieved", rows)
}

func (h *RequirementHandler) createMajor(c *fiber.Ctx) error {
	var payload dto.TrackRequirementCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	row, err := h.service.CreateMajor(c.Context(), ownerIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "major requirement created", row)
}

func (h *RequirementHandler) updateMajor(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TrackRequirementUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	row, err := h.service.UpdateMajor(c.Context(), ownerIDFromContext(c), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "major requirement updated", row)
}

func (h *RequirementHandler) deleteMajor(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteMajor(c.Context(), ownerIDFromContext(c), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "major requirement deleted", fiber.Map{"id": id})
}

func (h *RequirementHandler) listMinor(c *fiber.Ctx) error {
	rows, err := h.service.ListMinor(c.Context(), ownerIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "minor requirements retrieved", rows)
}

func (h *RequirementHandler) createMinor(c *fiber.Ctx) error {
	var payload dto.TrackRequirementCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	row, err := h.service.CreateMinor(c.Context(), ownerIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "minor requirement created", row)
}

func (h *RequirementHandler) updateMinor(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TrackRequirementUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	row, err := h.service.UpdateMinor(c.Context(), ownerIDFromContext(c), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "minor requirement updated", row)
}

func (h *RequirementHandler) deleteMinor(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteMinor(c.Context(), ownerIDFromContext(c), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "minor requirement deleted", fiber.Map{"id": id})
}

func (h *RequirementHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrRequirementNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "requirement not found")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *RequirementHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
