package models

import "time"

// Application statuses tracked by the career board.
const (
	ApplicationStatusApplied   = "Applied"
	ApplicationStatusInterview = "Interview"
	ApplicationStatusOffer     = "Offer"
	ApplicationStatusRejected  = "Rejected"
	ApplicationStatusAccepted  = "Accepted"
	ApplicationStatusDeclined  = "Declined"
	ApplicationStatusWithdrawn = "Withdrawn"
)

// Application is a job, internship, or program application entry.
type Application struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	OwnerID             string     `gorm:"size:64;index;not null" json:"owner_id"`
	Type                string     `gorm:"size:32;default:Internship" json:"type"`
	CompanyOrganization string     `gorm:"size:255;not null" json:"company_organization"`
	Position            string     `gorm:"size:255;not null" json:"position"`
	Status              string     `gorm:"size:16;default:Applied" json:"status"`
	AppliedDate         *time.Time `json:"applied_date"`
	Deadline            *time.Time `json:"deadline"`
	InterviewDate       *time.Time `json:"interview_date"`
	InterviewTime       string     `gorm:"size:8" json:"interview_time"`
	Notes               string     `gorm:"type:text" json:"notes"`
	URL                 string     `gorm:"size:512" json:"url"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
