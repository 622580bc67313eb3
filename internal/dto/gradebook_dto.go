package dto

import (
	"github.com/trackademic/trackademic-api/internal/academics"
)

// GradebookClass is one class entry in the gradebook view. Grade is nil
// when the class has no graded work yet.
type GradebookClass struct {
	Class ClassResponse               `json:"class"`
	Grade *academics.ClassGradeResult `json:"grade"`
}

// GradebookResponse is the full gradebook view for the caller's active
// classes.
type GradebookResponse struct {
	Classes []GradebookClass   `json:"classes"`
	Weights map[string]float64 `json:"weights"`
}

// GradeProjectionRequest asks for a hypothetical grade with anticipated
// scores applied to pending assignments.
type GradeProjectionRequest struct {
	ClassID     uint             `json:"class_id" validate:"required"`
	Anticipated map[uint]float64 `json:"anticipated" validate:"required,dive,gte=0,lte=100"`
}

// GradeProjectionResponse pairs the current grade with the projection.
type GradeProjectionResponse struct {
	Current   *academics.ClassGradeResult `json:"current"`
	Projected *academics.ClassGradeResult `json:"projected"`
}

// GPASummaryResponse is the GPA calculator view: current-term and
// cumulative GPA plus the credit totals feeding them.
type GPASummaryResponse struct {
	SemesterGPA   float64  `json:"semester_gpa"`
	CumulativeGPA float64  `json:"cumulative_gpa"`
	TotalCredits  float64  `json:"total_credits"`
	PriorGPA      *float64 `json:"prior_gpa"`
	PriorCredits  float64  `json:"prior_credits"`
}
