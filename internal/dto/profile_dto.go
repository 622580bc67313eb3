package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/trackademic/trackademic-api/internal/models"
)

// ProfileUpsertRequest replaces the caller's profile document. All fields
// are optional; absent fields keep their stored values.
type ProfileUpsertRequest struct {
	DisplayName             *string      `json:"display_name" validate:"omitempty,max=255"`
	Major                   *string      `json:"major" validate:"omitempty,max=255"`
	SchoolYear              *string      `json:"school_year" validate:"omitempty,max=32"`
	Plans                   *string      `json:"plans" validate:"omitempty,max=2000"`
	LinkedinURL             *string      `json:"linkedin_url" validate:"omitempty,url,max=512"`
	GithubURL               *string      `json:"github_url" validate:"omitempty,url,max=512"`
	HandshakeURL            *string      `json:"handshake_url" validate:"omitempty,url,max=512"`
	PortfolioURL            *string      `json:"portfolio_url" validate:"omitempty,url,max=512"`
	CustomLinks             []CustomLink `json:"custom_links" validate:"omitempty,dive"`
	DegreeCreditRequirement *float64     `json:"degree_credit_requirement" validate:"omitempty,gt=0,lte=300"`
	CurrentGPA              *float64     `json:"current_gpa" validate:"omitempty,gte=0,lte=4"`
	CompletedCreditHours    *float64     `json:"completed_credit_hours" validate:"omitempty,gte=0,lte=300"`
}

// CustomLink is a user-defined labeled URL on the profile.
type CustomLink struct {
	Label string `json:"label" validate:"required,max=64"`
	URL   string `json:"url" validate:"required,url,max=512"`
}

// ProfileResponse is the serialized profile document.
type ProfileResponse struct {
	DisplayName             string         `json:"display_name"`
	Major                   string         `json:"major"`
	SchoolYear              string         `json:"school_year"`
	Plans                   string         `json:"plans"`
	LinkedinURL             string         `json:"linkedin_url"`
	GithubURL               string         `json:"github_url"`
	HandshakeURL            string         `json:"handshake_url"`
	PortfolioURL            string         `json:"portfolio_url"`
	CustomLinks             datatypes.JSON `json:"custom_links"`
	DegreeCreditRequirement float64        `json:"degree_credit_requirement"`
	CurrentGPA              *float64       `json:"current_gpa"`
	CompletedCreditHours    float64        `json:"completed_credit_hours"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// NewProfileResponse converts a model into a DTO.
func NewProfileResponse(model models.UserProfile) ProfileResponse {
	return ProfileResponse{
		DisplayName:             model.DisplayName,
		Major:                   model.Major,
		SchoolYear:              model.SchoolYear,
		Plans:                   model.Plans,
		LinkedinURL:             model.LinkedinURL,
		GithubURL:               model.GithubURL,
		HandshakeURL:            model.HandshakeURL,
		PortfolioURL:            model.PortfolioURL,
		CustomLinks:             model.CustomLinks,
		DegreeCreditRequirement: model.DegreeCreditRequirement,
		CurrentGPA:              model.CurrentGPA,
		CompletedCreditHours:    model.CompletedCreditHours,
		UpdatedAt:               model.UpdatedAt,
	}
}

// DegreeSettingsUpsertRequest replaces planner configuration.
type DegreeSettingsUpsertRequest struct {
	MinorName            *string  `json:"minor_name" validate:"omitempty,max=255"`
	MinorCreditsRequired *float64 `json:"minor_credits_required" validate:"omitempty,gt=0,lte=120"`
	CoreCategories       []string `json:"core_categories" validate:"omitempty,dive,min=1,max=64"`
}

// DegreeSettingsResponse is the serialized planner configuration.
type DegreeSettingsResponse struct {
	MinorName            string         `json:"minor_name"`
	MinorCreditsRequired float64        `json:"minor_credits_required"`
	CoreCategories       datatypes.JSON `json:"core_categories"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// NewDegreeSettingsResponse converts a model into a DTO.
func NewDegreeSettingsResponse(model models.DegreeSettings) DegreeSettingsResponse {
	return DegreeSettingsResponse{
		MinorName:            model.MinorName,
		MinorCreditsRequired: model.MinorCreditsRequired,
		CoreCategories:       model.CoreCategories,
		UpdatedAt:            model.UpdatedAt,
	}
}
