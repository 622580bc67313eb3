package models

import (
	"time"

	"gorm.io/datatypes"
)

// CategoryWeightDoc is the single per-owner document mapping
// "<classID>_<category>" keys to weight percentages. Writes persist the
// whole map; nothing validates that weights total 100, and the grade
// calculator's mode selection is the only consumer of the total.
type CategoryWeightDoc struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	OwnerID   string            `gorm:"size:64;uniqueIndex;not null" json:"owner_id"`
	Weights   datatypes.JSONMap `gorm:"type:json" json:"weights"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
