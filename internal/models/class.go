package models

import (
	"time"

	"gorm.io/datatypes"
)

// Degree categories a class can count toward.
const (
	CategoryCore     = "Core"
	CategoryMajor    = "Major"
	CategoryMinor    = "Minor"
	CategoryElective = "Elective"
)

// Class represents a course the student is (or was) enrolled in.
// Archived classes keep IsActive=false and stay out of current-term math.
type Class struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	OwnerID      string         `gorm:"size:64;index;not null" json:"owner_id"`
	CourseCode   string         `gorm:"size:32;not null" json:"course_code"`
	CourseName   string         `gorm:"size:255;not null" json:"course_name"`
	Professor    string         `gorm:"size:255" json:"professor"`
	CreditHours  float64        `gorm:"not null;default:3" json:"credit_hours"`
	Category     string         `gorm:"size:16;default:Major" json:"category"`
	CoreCategory string         `gorm:"size:64" json:"core_category"`
	Days         datatypes.JSON `gorm:"type:json" json:"days"`
	StartTime    string         `gorm:"size:8" json:"start_time"`
	EndTime      string         `gorm:"size:8" json:"end_time"`
	Semester     string         `gorm:"size:64" json:"semester"`
	Color        string         `gorm:"size:16" json:"color"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	IsCompleted  bool           `gorm:"not null;default:false" json:"is_completed"`
	IsTransfer   bool           `gorm:"not null;default:false" json:"is_transfer"`
	FinalGPA     *float64       `json:"final_gpa"`
	Grade        *float64       `json:"grade"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
