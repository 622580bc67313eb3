package models

import "time"

// Course completion statuses shared by planner records.
const (
	StatusNotStarted  = "Not Started"
	StatusInProgress  = "In Progress"
	StatusCompleted   = "Completed"
	StatusTransferred = "Transferred"
)

// CoreRequirement is a manually entered core-curriculum course. Core rows
// track completion through a status string.
type CoreRequirement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"size:64;index;not null" json:"owner_id"`
	CourseCode  string    `gorm:"size:32;not null" json:"course_code"`
	CourseName  string    `gorm:"size:255" json:"course_name"`
	CreditHours float64   `gorm:"not null;default:3" json:"credit_hours"`
	Category    string    `gorm:"size:64" json:"category"`
	Status      string    `gorm:"size:16;default:'Not Started'" json:"status"`
	IsTransfer  bool      `gorm:"not null;default:false" json:"is_transfer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MajorRequirement is a manually entered major course. Major and minor rows
// predate the status field and track completion through boolean flags.
type MajorRequirement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"size:64;index;not null" json:"owner_id"`
	CourseCode  string    `gorm:"size:32;not null" json:"course_code"`
	CourseName  string    `gorm:"size:255" json:"course_name"`
	CreditHours float64   `gorm:"not null;default:3" json:"credit_hours"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	IsTransfer  bool      `gorm:"not null;default:false" json:"is_transfer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MinorRequirement is a manually entered minor course.
type MinorRequirement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"size:64;index;not null" json:"owner_id"`
	CourseCode  string    `gorm:"size:32;not null" json:"course_code"`
	CourseName  string    `gorm:"size:255" json:"course_name"`
	CreditHours float64   `gorm:"not null;default:3" json:"credit_hours"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	IsTransfer  bool      `gorm:"not null;default:false" json:"is_transfer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
