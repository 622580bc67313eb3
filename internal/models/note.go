package models

import "time"

// Note is a free-form study note, optionally attached to a class.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:64;index;not null" json:"owner_id"`
	ClassID   *uint     `gorm:"index" json:"class_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
