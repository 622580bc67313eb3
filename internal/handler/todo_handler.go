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

// TodoHandler wires todo HTTP routes.
type TodoHandler struct {
	service service.TodoService
	logger  zerolog.Logger
}

// NewTodoHandler constructs the handler.
func NewTodoHandler(service service.TodoService, logger zerolog.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		logger:  logger.With().Str("component", "todo_handler").Logger(),
	}
}

// Register attaches todo endpoints to the router group.
func (h *TodoHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Patch("/:id/complete", h.toggleComplete)
	router.Delete("/:id", h.delete)
}

func (h *TodoHandler) list(c *fiber.Ctx) error {
	includeCompleted := c.Query("include_completed") == "true"

	todos, err := h.service.List(c.Context(), ownerIDFromContext(c), includeCompleted)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "todos retrieved", todos)
}

func (h *TodoHandler) create(c *fiber.Ctx) error {
	var payload dto.TodoCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	todo, err := h.service.Create(c.Context(), ownerIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "todo created", todo)
}

func (h *TodoHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TodoUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	todo, err := h.service.Update(c.Context(), ownerIDFromContext(c), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "todo updated", todo)
}

func (h *TodoHandler) toggleComplete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	todo, err := h.service.ToggleComplete(c.Context(), ownerIDFromContext(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "todo completion toggled", todo)
}

func (h *TodoHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), ownerIDFromContext(c), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "todo deleted", fiber.Map{"id": id})
}

func (h *TodoHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "todo not found")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *TodoHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
