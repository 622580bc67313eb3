package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// ProfileRepository defines persistence operations for the per-owner
// profile and planner-settings documents. Get returns gorm.ErrRecordNotFound
// when no document exists yet; Upsert creates or replaces in place.
type ProfileRepository interface {
	Get(ctx context.Context, ownerID string) (models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
	GetSettings(ctx context.Context, ownerID string) (models.DegreeSettings, error)
	UpsertSettings(ctx context.Context, settings *models.DegreeSettings) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository instantiates a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, ownerID string) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&profile).Error; err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", profile.OwnerID).
		First(&existing).Error
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(profile).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(profile).Error
	default:
		return err
	}
}

func (r *profileRepository) GetSettings(ctx context.Context, ownerID string) (models.DegreeSettings, error) {
	var settings models.DegreeSettings
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&settings).Error; err != nil {
		return models.DegreeSettings{}, err
	}

	return settings, nil
}

func (r *profileRepository) UpsertSettings(ctx context.Context, settings *models.DegreeSettings) error {
	var existing models.DegreeSettings
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", settings.OwnerID).
		First(&existing).Error
	switch {
	case err == nil:
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(settings).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(settings).Error
	default:
		return err
	}
}
