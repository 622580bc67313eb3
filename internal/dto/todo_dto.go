package dto

import (
	"time"

	"github.com/trackademic/trackademic-api/internal/models"
)

// TodoCreateRequest describes the payload for adding a task.
type TodoCreateRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// TodoUpdateRequest describes the payload for updating a task.
type TodoUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// TodoResponse is the serialized representation returned to API clients.
type TodoResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTodoResponse converts a model into a DTO.
func NewTodoResponse(model models.Todo) TodoResponse {
	return TodoResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Priority:    model.Priority,
		DueDate:     model.DueDate,
		IsCompleted: model.IsCompleted,
		CompletedAt: model.CompletedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewTodoResponseSlice converts a slice of models into DTOs.
func NewTodoResponseSlice(todos []models.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, NewTodoResponse(todo))
	}

	return responses
}
