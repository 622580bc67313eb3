package models

import "time"

// Todo priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Todo is a personal task item outside of graded coursework.
type Todo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OwnerID     string     `gorm:"size:64;index;not null" json:"owner_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"size:8;default:Medium" json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
