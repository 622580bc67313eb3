package dto

import (
	"github.com/trackademic/trackademic-api/internal/academics"
)

// DegreeProgressResponse is the planner's progress view: overall credit
// progress, minor-track progress when a minor is configured, and the
// source collections the numbers came from.
type DegreeProgressResponse struct {
	Progress  academics.DegreeProgressResult `json:"progress"`
	Minor     *MinorProgressSection          `json:"minor"`
	Semesters []SemesterResponse             `json:"semesters"`
	Core      []CoreRequirementResponse      `json:"core"`
	Major     []TrackRequirementResponse     `json:"major"`
	MinorRows []TrackRequirementResponse     `json:"minor_rows"`
}

// MinorProgressSection is the minor-track block of the planner view.
type MinorProgressSection struct {
	Name     string                        `json:"name"`
	Progress academics.MinorProgressResult `json:"progress"`
}
