package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/trackademic/trackademic-api/internal/academics"
	"github.com/trackademic/trackademic-api/internal/models"
)

// PlannedCourseRequest is one course inside a semester plan.
type PlannedCourseRequest struct {
	ID           string   `json:"id" validate:"omitempty,max=64"`
	CourseCode   string   `json:"course_code" validate:"required,min=2,max=32"`
	CourseName   string   `json:"course_name" validate:"omitempty,max=255"`
	CreditHours  *float64 `json:"credit_hours" validate:"omitempty,gte=0,lte=12"`
	Category     string   `json:"category" validate:"omitempty,oneof=Core Major Minor Elective"`
	CoreCategory string   `json:"core_category" validate:"omitempty,max=64"`
	Status       string   `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed Transferred"`
}

// SemesterCreateRequest describes the payload for adding a planned term.
type SemesterCreateRequest struct {
	Name    string                 `json:"name" validate:"required,min=2,max=64"`
	Order   int                    `json:"order" validate:"gte=0"`
	Courses []PlannedCourseRequest `json:"courses" validate:"omitempty,dive"`
}

// SemesterUpdateRequest describes the payload for updating a planned
// term. A non-nil Courses replaces the embedded list wholesale.
type SemesterUpdateRequest struct {
	Name    *string                 `json:"name" validate:"omitempty,min=2,max=64"`
	Order   *int                    `json:"order" validate:"omitempty,gte=0"`
	Courses *[]PlannedCourseRequest `json:"courses" validate:"omitempty,dive"`
}

// SemesterResponse is the serialized representation returned to API clients.
type SemesterResponse struct {
	ID        uint                      `json:"id"`
	Name      string                    `json:"name"`
	Order     int                       `json:"order"`
	Courses   []academics.PlannedCourse `json:"courses"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// NewSemesterResponse converts a model into a DTO, decoding the embedded
// course list. Malformed stored JSON degrades to an empty list.
func NewSemesterResponse(model models.Semester) SemesterResponse {
	return SemesterResponse{
		ID:        model.ID,
		Name:      model.Name,
		Order:     model.Order,
		Courses:   DecodePlannedCourses(model.Courses),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewSemesterResponseSlice converts a slice of models into DTOs.
func NewSemesterResponseSlice(semesters []models.Semester) []SemesterResponse {
	responses := make([]SemesterResponse, 0, len(semesters))
	for _, semester := range semesters {
		responses = append(responses, NewSemesterResponse(semester))
	}

	return responses
}

// DecodePlannedCourses decodes a stored embedded course list.
func DecodePlannedCourses(raw datatypes.JSON) []academics.PlannedCourse {
	courses := make([]academics.PlannedCourse, 0)
	if len(raw) == 0 {
		return courses
	}
	if err := json.Unmarshal(raw, &courses); err != nil {
		return []academics.PlannedCourse{}
	}

	return courses
}
