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

// WeightHandler wires grading weight HTTP routes.
type WeightHandler struct {
	service service.WeightService
	logger  zerolog.Logger
}

// NewWeightHandler constructs the handler.
func NewWeightHandler(service service.WeightService, logger zerolog.Logger) *WeightHandler {
	return &WeightHandler{
		service: service,
		logger:  logger.With().Str("component", "weight_handler").Logger(),
	}
}

// Register attaches weight endpoints to the router group.
func (h *WeightHandler) Register(router fiber.Router) {
	router.Get("", h.get)
	router.Put("", h.set)
}

func (h *WeightHandler) get(c *fiber.Ctx) error {
	weights, err := h.service.Get(c.Context(), ownerIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "weights retrieved", weights)
}

func (h *WeightHandler) set(c *fiber.Ctx) error {
	var payload dto.WeightSetRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	weights, err := h.service.Set(c.Context(), ownerIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "weights updated", weights)
}

func (h *WeightHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *WeightHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
