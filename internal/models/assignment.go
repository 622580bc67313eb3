package models

import "time"

// Assignment represents a single piece of coursework for a class.
// Recurring requests are expanded into independent rows before they reach
// storage, so persisted assignments never recur.
type Assignment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      string    `gorm:"size:64;index;not null" json:"owner_id"`
	ClassID      uint      `gorm:"index;not null" json:"class_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"size:64;default:Homework" json:"category"`
	TotalPoints  float64   `gorm:"not null;default:100" json:"total_points"`
	EarnedPoints *float64  `json:"earned_points"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"is_completed"`
	IsGraded     bool      `gorm:"not null;default:false" json:"is_graded"`
	DueDate      time.Time `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPastDue returns true when the assignment deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.DueDate)
}
