package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile holds the single per-owner profile document, including the
// prior-GPA baseline that seeds cumulative GPA and degree progress.
type UserProfile struct {
	ID                      uint           `gorm:"primaryKey" json:"id"`
	OwnerID                 string         `gorm:"size:64;uniqueIndex;not null" json:"owner_id"`
	DisplayName             string         `gorm:"size:255" json:"display_name"`
	Major                   string         `gorm:"size:255" json:"major"`
	SchoolYear              string         `gorm:"size:32" json:"school_year"`
	Plans                   string         `gorm:"type:text" json:"plans"`
	LinkedinURL             string         `gorm:"size:512" json:"linkedin_url"`
	GithubURL               string         `gorm:"size:512" json:"github_url"`
	HandshakeURL            string         `gorm:"size:512" json:"handshake_url"`
	PortfolioURL            string         `gorm:"size:512" json:"portfolio_url"`
	CustomLinks             datatypes.JSON `gorm:"type:json" json:"custom_links"`
	DegreeCreditRequirement float64        `gorm:"not null;default:120" json:"degree_credit_requirement"`
	CurrentGPA              *float64       `json:"current_gpa"`
	CompletedCreditHours    float64        `gorm:"not null;default:0" json:"completed_credit_hours"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// DegreeSettings stores planner configuration: the editable core-category
// table plus minor name and credit requirement.
type DegreeSettings struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	OwnerID              string         `gorm:"size:64;uniqueIndex;not null" json:"owner_id"`
	MinorName            string         `gorm:"size:255" json:"minor_name"`
	MinorCreditsRequired float64        `gorm:"not null;default:18" json:"minor_credits_required"`
	CoreCategories       datatypes.JSON `gorm:"type:json" json:"core_categories"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
