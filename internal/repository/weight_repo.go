package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// WeightRepository defines persistence operations for the per-owner
// category-weight document.
type WeightRepository interface {
	Get(ctx context.Context, ownerID string) (models.CategoryWeightDoc, error)
	Upsert(ctx context.Context, doc *models.CategoryWeightDoc) error
}

type weightRepository struct {
	db *gorm.DB
}

// NewWeightRepository instantiates a GORM-backed repository.
func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) Get(ctx context.Context, ownerID string) (models.CategoryWeightDoc, error) {
	var doc models.CategoryWeightDoc
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&doc).Error; err != nil {
		return models.CategoryWeightDoc{}, err
	}

	return doc, nil
}

func (r *weightRepository) Upsert(ctx context.Context, doc *models.CategoryWeightDoc) error {
	var existing models.CategoryWeightDoc
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", doc.OwnerID).
		First(&existing).Error
	switch {
	case err == nil:
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(doc).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(doc).Error
	default:
		return err
	}
}
