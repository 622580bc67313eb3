package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/trackademic/trackademic-api/internal/service"
	"github.com/trackademic/trackademic-api/internal/utils"
)

// DegreeHandler wires degree progress HTTP routes.
type DegreeHandler struct {
	service service.DegreeService
	logger  zerolog.Logger
}

// NewDegreeHandler constructs the handler.
func NewDegreeHandler(service service.DegreeService, logger zerolog.Logger) *DegreeHandler {
	return &DegreeHandler{
		service: service,
		logger:  logger.With().Str("component", "degree_handler").Logger(),
	}
}

// Register attaches degree endpoints to the router group.
func (h *DegreeHandler) Register(router fiber.Router) {
	router.Get("/progress", h.progress)
}

func (h *DegreeHandler) progress(c *fiber.Ctx) error {
	progress, err := h.service.GetProgress(c.Context(), ownerIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "degree progress retrieved", progress)
}

func (h *DegreeHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
