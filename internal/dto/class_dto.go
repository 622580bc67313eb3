package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/trackademic/trackademic-api/internal/models"
)

const isoLayout = time.RFC3339

// ClassCreateRequest describes the payload for adding a class.
type ClassCreateRequest struct {
	CourseCode   string   `json:"course_code" validate:"required,min=2,max=32"`
	CourseName   string   `json:"course_name" validate:"required,min=2,max=255"`
	Professor    string   `json:"professor" validate:"omitempty,max=255"`
	CreditHours  *float64 `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	Category     string   `json:"category" validate:"omitempty,oneof=Core Major Minor Elective"`
	CoreCategory string   `json:"core_category" validate:"omitempty,max=64"`
	Days         []string `json:"days" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    string   `json:"start_time" validate:"omitempty,len=5"`
	EndTime      string   `json:"end_time" validate:"omitempty,len=5"`
	Semester     string   `json:"semester" validate:"omitempty,max=64"`
	Color        string   `json:"color" validate:"omitempty,max=16"`
}

// ClassUpdateRequest describes the payload for updating a class. All
// fields are optional; only present fields are applied.
type ClassUpdateRequest struct {
	CourseCode   *string   `json:"course_code" validate:"omitempty,min=2,max=32"`
	CourseName   *string   `json:"course_name" validate:"omitempty,min=2,max=255"`
	Professor    *string   `json:"professor" validate:"omitempty,max=255"`
	CreditHours  *float64  `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	Category     *string   `json:"category" validate:"omitempty,oneof=Core Major Minor Elective"`
	CoreCategory *string   `json:"core_category" validate:"omitempty,max=64"`
	Days         *[]string `json:"days" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    *string   `json:"start_time" validate:"omitempty,len=5"`
	EndTime      *string   `json:"end_time" validate:"omitempty,len=5"`
	Semester     *string   `json:"semester" validate:"omitempty,max=64"`
	Color        *string   `json:"color" validate:"omitempty,max=16"`
	IsActive     *bool     `json:"is_active"`
	IsCompleted  *bool     `json:"is_completed"`
	IsTransfer   *bool     `json:"is_transfer"`
	FinalGPA     *float64  `json:"final_gpa" validate:"omitempty,gte=0,lte=4"`
	Grade        *float64  `json:"grade" validate:"omitempty,gte=0,lte=120"`
}

// ClassArchiveRequest toggles a class out of (or back into) the current
// term, optionally recording its final grade.
type ClassArchiveRequest struct {
	IsActive bool     `json:"is_active"`
	FinalGPA *float64 `json:"final_gpa" validate:"omitempty,gte=0,lte=4"`
	Grade    *float64 `json:"grade" validate:"omitempty,gte=0,lte=120"`
}

// ClassResponse is the serialized representation returned to API clients.
type ClassResponse struct {
	ID           uint           `json:"id"`
	CourseCode   string         `json:"course_code"`
	CourseName   string         `json:"course_name"`
	Professor    string         `json:"professor"`
	CreditHours  float64        `json:"credit_hours"`
	Category     string         `json:"category"`
	CoreCategory string         `json:"core_category"`
	Days         datatypes.JSON `json:"days"`
	StartTime    string         `json:"start_time"`
	EndTime      string         `json:"end_time"`
	Semester     string         `json:"semester"`
	Color        string         `json:"color"`
	IsActive     bool           `json:"is_active"`
	IsCompleted  bool           `json:"is_completed"`
	IsTransfer   bool           `json:"is_transfer"`
	FinalGPA     *float64       `json:"final_gpa"`
	Grade        *float64       `json:"grade"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewClassResponse converts a model into a DTO.
func NewClassResponse(model models.Class) ClassResponse {
	return ClassResponse{
		ID:           model.ID,
		CourseCode:   model.CourseCode,
		CourseName:   model.CourseName,
		Professor:    model.Professor,
		CreditHours:  model.CreditHours,
		Category:     model.Category,
		CoreCategory: model.CoreCategory,
		Days:         model.Days,
		StartTime:    model.StartTime,
		EndTime:      model.EndTime,
		Semester:     model.Semester,
		Color:        model.Color,
		IsActive:     model.IsActive,
		IsCompleted:  model.IsCompleted,
		IsTransfer:   model.IsTransfer,
		FinalGPA:     model.FinalGPA,
		Grade:        model.Grade,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// NewClassResponseSlice converts a slice of models into DTOs.
func NewClassResponseSlice(classes []models.Class) []ClassResponse {
	responses := make([]ClassResponse, 0, len(classes))
	for _, class := range classes {
		responses = append(responses, NewClassResponse(class))
	}

	return responses
}
