package models

import (
	"time"

	"gorm.io/datatypes"
)

// Semester is a planned term in the degree planner. Its courses live as an
// embedded JSON list owned by the semester; edits replace the whole list.
type Semester struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	OwnerID   string         `gorm:"size:64;index;not null" json:"owner_id"`
	Name      string         `gorm:"size:64;not null" json:"name"`
	Order     int            `gorm:"not null;default:0" json:"order"`
	Courses   datatypes.JSON `gorm:"type:json" json:"courses"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
