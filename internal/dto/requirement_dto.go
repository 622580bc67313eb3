package dto

import (
	"time"

	"github.com/trackademic/trackademic-api/internal/models"
)

// CoreRequirementCreateRequest describes the payload for adding a
// core-curriculum course.
type CoreRequirementCreateRequest struct {
	CourseCode  string   `json:"course_code" validate:"required,min=2,max=32"`
	CourseName  string   `json:"course_name" validate:"omitempty,max=255"`
	CreditHours *float64 `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	Category    string   `json:"category" validate:"omitempty,max=64"`
	Status      string   `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed Transferred"`
	IsTransfer  bool     `json:"is_transfer"`
}

// CoreRequirementUpdateRequest describes the payload for updating a
// core-curriculum course.
type CoreRequirementUpdateRequest struct {
	CourseCode  *string  `json:"course_code" validate:"omitempty,min=2,max=32"`
	CourseName  *string  `json:"course_name" validate:"omitempty,max=255"`
	CreditHours *float64 `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	Category    *string  `json:"category" validate:"omitempty,max=64"`
	Status      *string  `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed Transferred"`
	IsTransfer  *bool    `json:"is_transfer"`
}

// TrackRequirementCreateRequest describes the payload for adding a major
// or minor course. These rows track completion through boolean flags.
type TrackRequirementCreateRequest struct {
	CourseCode  string   `json:"course_code" validate:"required,min=2,max=32"`
	CourseName  string   `json:"course_name" validate:"omitempty,max=255"`
	CreditHours *float64 `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	IsCompleted bool     `json:"is_completed"`
	IsTransfer  bool     `json:"is_transfer"`
}

// TrackRequirementUpdateRequest describes the payload for updating a
// major or minor course.
type TrackRequirementUpdateRequest struct {
	CourseCode  *string  `json:"course_code" validate:"omitempty,min=2,max=32"`
	CourseName  *string  `json:"course_name" validate:"omitempty,max=255"`
	CreditHours *float64 `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	IsCompleted *bool    `json:"is_completed"`
	IsTransfer  *bool    `json:"is_transfer"`
}

// CoreRequirementResponse is the serialized core-curriculum row.
type CoreRequirementResponse struct {
	ID          uint      `json:"id"`
	CourseCode  string    `json:"course_code"`
	CourseName  string    `json:"course_name"`
	CreditHours float64   `json:"credit_hours"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	IsTransfer  bool      `json:"is_transfer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TrackRequirementResponse is the serialized major or minor row.
type TrackRequirementResponse struct {
	ID          uint      `json:"id"`
	CourseCode  string    `json:"course_code"`
	CourseName  string    `json:"course_name"`
	CreditHours float64   `json:"credit_hours"`
	IsCompleted bool      `json:"is_completed"`
	IsTransfer  bool      `json:"is_transfer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCoreRequirementResponse converts a model into a DTO.
func NewCoreRequirementResponse(model models.CoreRequirement) CoreRequirementResponse {
	return CoreRequirementResponse{
		ID:          model.ID,
		CourseCode:  model.CourseCode,
		CourseName:  model.CourseName,
		CreditHours: model.CreditHours,
		Category:    model.Category,
		Status:      model.Status,
		IsTransfer:  model.IsTransfer,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewCoreRequirementResponseSlice converts a slice of models into DTOs.
func NewCoreRequirementResponseSlice(rows []models.CoreRequirement) []CoreRequirementResponse {
	responses := make([]CoreRequirementResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewCoreRequirementResponse(row))
	}

	return responses
}

// NewMajorRequirementResponse converts a model into a DTO.
func NewMajorRequirementResponse(model models.MajorRequirement) TrackRequirementResponse {
	return TrackRequirementResponse{
		ID:          model.ID,
		CourseCode:  model.CourseCode,
		CourseName:  model.CourseName,
		CreditHours: model.CreditHours,
		IsCompleted: model.IsCompleted,
		IsTransfer:  model.IsTransfer,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewMajorRequirementResponseSlice converts a slice of models into DTOs.
func NewMajorRequirementResponseSlice(rows []models.MajorRequirement) []TrackRequirementResponse {
	responses := make([]TrackRequirementResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewMajorRequirementResponse(row))
	}

	return responses
}

// NewMinorRequirementResponse converts a model into a DTO.
func NewMinorRequirementResponse(model models.MinorRequirement) TrackRequirementResponse {
	return TrackRequirementResponse{
		ID:          model.ID,
		CourseCode:  model.CourseCode,
		CourseName:  model.CourseName,
		CreditHours: model.CreditHours,
		IsCompleted: model.IsCompleted,
		IsTransfer:  model.IsTransfer,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewMinorRequirementResponseSlice converts a slice of models into DTOs.
func NewMinorRequirementResponseSlice(rows []models.MinorRequirement) []TrackRequirementResponse {
	responses := make([]TrackRequirementResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewMinorRequirementResponse(row))
	}

	return responses
}
