package dto

import (
	"time"

	"github.com/trackademic/trackademic-api/internal/models"
)

// AssignmentCreateRequest describes the payload for adding an assignment.
// When IsRecurring is set the server expands the request into one row per
// week from DueDate through RecurrenceEnd inclusive.
type AssignmentCreateRequest struct {
	ClassID       uint     `json:"class_id" validate:"required"`
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Description   string   `json:"description" validate:"omitempty,max=2000"`
	Category      string   `json:"category" validate:"omitempty,max=64"`
	TotalPoints   *float64 `json:"total_points" validate:"omitempty,gt=0"`
	DueDate       string   `json:"due_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurrenceEnd *string  `json:"recurrence_end" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00,required_with=IsRecurring"`
}

// AssignmentUpdateRequest describes the payload for updating an assignment.
type AssignmentUpdateRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
	Category     *string  `json:"category" validate:"omitempty,max=64"`
	TotalPoints  *float64 `json:"total_points" validate:"omitempty,gt=0"`
	EarnedPoints *float64 `json:"earned_points" validate:"omitempty,gte=0"`
	IsCompleted  *bool    `json:"is_completed"`
	IsGraded     *bool    `json:"is_graded"`
	DueDate      *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// AssignmentGradeRequest records a grade for an assignment. Grading marks
// the assignment graded and completed in one step.
type AssignmentGradeRequest struct {
	EarnedPoints float64  `json:"earned_points" validate:"gte=0"`
	TotalPoints  *float64 `json:"total_points" validate:"omitempty,gt=0"`
}

// ManualGradeRequest is the gradebook quick-add: a standalone graded
// entry with no due date or completion workflow attached.
type ManualGradeRequest struct {
	ClassID      uint    `json:"class_id" validate:"required"`
	Title        string  `json:"title" validate:"required,min=1,max=255"`
	Category     string  `json:"category" validate:"omitempty,max=64"`
	EarnedPoints float64 `json:"earned_points" validate:"gte=0"`
	TotalPoints  float64 `json:"total_points" validate:"required,gt=0"`
}

// AssignmentResponse is the serialized representation returned to API clients.
type AssignmentResponse struct {
	ID           uint      `json:"id"`
	ClassID      uint      `json:"class_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	TotalPoints  float64   `json:"total_points"`
	EarnedPoints *float64  `json:"earned_points"`
	IsCompleted  bool      `json:"is_completed"`
	IsGraded     bool      `json:"is_graded"`
	DueDate      time.Time `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           model.ID,
		ClassID:      model.ClassID,
		Title:        model.Title,
		Description:  model.Description,
		Category:     model.Category,
		TotalPoints:  model.TotalPoints,
		EarnedPoints: model.EarnedPoints,
		IsCompleted:  model.IsCompleted,
		IsGraded:     model.IsGraded,
		DueDate:      model.DueDate,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
