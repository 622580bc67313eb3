package dto

import (
	"time"

	"github.com/trackademic/trackademic-api/internal/models"
)

// ApplicationCreateRequest describes the payload for adding an
// application to the career board.
type ApplicationCreateRequest struct {
	Type                string  `json:"type" validate:"omitempty,oneof=Internship 'Full-time' 'Part-time' Research Program"`
	CompanyOrganization string  `json:"company_organization" validate:"required,min=1,max=255"`
	Position            string  `json:"position" validate:"required,min=1,max=255"`
	Status              string  `json:"status" validate:"omitempty,oneof=Applied Interview Offer Rejected Accepted Declined Withdrawn"`
	AppliedDate         *string `json:"applied_date" validate:"omitempty,datetime=2006-01-02"`
	Deadline            *string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	InterviewDate       *string `json:"interview_date" validate:"omitempty,datetime=2006-01-02"`
	InterviewTime       string  `json:"interview_time" validate:"omitempty,len=5"`
	Notes               string  `json:"notes" validate:"omitempty,max=5000"`
	URL                 string  `json:"url" validate:"omitempty,url,max=512"`
}

// ApplicationUpdateRequest describes the payload for updating an
// application.
type ApplicationUpdateRequest struct {
	Type                *string `json:"type" validate:"omitempty,oneof=Internship 'Full-time' 'Part-time' Research Program"`
	CompanyOrganization *string `json:"company_organization" validate:"omitempty,min=1,max=255"`
	Position            *string `json:"position" validate:"omitempty,min=1,max=255"`
	Status              *string `json:"status" validate:"omitempty,oneof=Applied Interview Offer Rejected Accepted Declined Withdrawn"`
	AppliedDate         *string `json:"applied_date" validate:"omitempty,datetime=2006-01-02"`
	Deadline            *string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	InterviewDate       *string `json:"interview_date" validate:"omitempty,datetime=2006-01-02"`
	InterviewTime       *string `json:"interview_time" validate:"omitempty,len=5"`
	Notes               *string `json:"notes" validate:"omitempty,max=5000"`
	URL                 *string `json:"url" validate:"omitempty,url,max=512"`
}

// ApplicationResponse is the serialized representation returned to API clients.
type ApplicationResponse struct {
	ID                  uint       `json:"id"`
	Type                string     `json:"type"`
	CompanyOrganization string     `json:"company_organization"`
	Position            string     `json:"position"`
	Status              string     `json:"status"`
	AppliedDate         *time.Time `json:"applied_date"`
	Deadline            *time.Time `json:"deadline"`
	InterviewDate       *time.Time `json:"interview_date"`
	InterviewTime       string     `json:"interview_time"`
	Notes               string     `json:"notes"`
	URL                 string     `json:"url"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewApplicationResponse converts a model into a DTO.
func NewApplicationResponse(model models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                  model.ID,
		Type:                model.Type,
		CompanyOrganization: model.CompanyOrganization,
		Position:            model.Position,
		Status:              model.Status,
		AppliedDate:         model.AppliedDate,
		Deadline:            model.Deadline,
		InterviewDate:       model.InterviewDate,
		InterviewTime:       model.InterviewTime,
		Notes:               model.Notes,
		URL:                 model.URL,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

// NewApplicationResponseSlice converts a slice of models into DTOs.
func NewApplicationResponseSlice(applications []models.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, NewApplicationResponse(application))
	}

	return responses
}
