package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// CoreRequirementRepository defines persistence operations for manual
// core-curriculum rows. Every query is scoped to the owning user.
type CoreRequirementRepository interface {
	List(ctx context.Context, ownerID string) ([]models.CoreRequirement, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.CoreRequirement, error)
	Create(ctx context.Context, row *models.CoreRequirement) error
	Update(ctx context.Context, row *models.CoreRequirement) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type coreRequirementRepository struct {
	db *gorm.DB
}

// NewCoreRequirementRepository instantiates a GORM-backed repository.
func NewCoreRequirementRepository(db *gorm.DB) CoreRequirementRepository {
	return &coreRequirementRepository{db: db}
}

func (r *coreRequirementRepository) List(ctx context.Context, ownerID string) ([]models.CoreRequirement, error) {
	var rows []models.CoreRequirement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("category ASC, course_code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *coreRequirementRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.CoreRequirement, error) {
	var row models.CoreRequirement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&row, id).Error; err != nil {
		return models.CoreRequirement{}, err
	}

	return row, nil
}

func (r *coreRequirementRepository) Create(ctx context.Context, row *models.CoreRequirement) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *coreRequirementRepository) Update(ctx context.Context, row *models.CoreRequirement) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *coreRequirementRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.CoreRequirement{}, id).Error
}

// MajorRequirementRepository defines persistence operations for manual
// major rows.
type MajorRequirementRepository interface {
	List(ctx context.Context, ownerID string) ([]models.MajorRequirement, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.MajorRequirement, error)
	Create(ctx context.Context, row *models.MajorRequirement) error
	Update(ctx context.Context, row *models.MajorRequirement) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type majorRequirementRepository struct {
	db *gorm.DB
}

// NewMajorRequirementRepository instantiates a GORM-backed repository.
func NewMajorRequirementRepository(db *gorm.DB) MajorRequirementRepository {
	return &majorRequirementRepository{db: db}
}

func (r *majorRequirementRepository) List(ctx context.Context, ownerID string) ([]models.MajorRequirement, error) {
	var rows []models.MajorRequirement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("course_code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *majorRequirementRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.MajorRequirement, error) {
	var row models.MajorRequirement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&row, id).Error; err != nil {
		return models.MajorRequirement{}, err
	}

	return row, nil
}

func (r *majorRequirementRepository) Create(ctx context.Context, row *models.MajorRequirement) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *majorRequirementRepository) Update(ctx context.Context, row *models.MajorRequirement) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *majorRequirementRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.MajorRequirement{}, id).Error
}

// MinorRequirementRepository defines persistence operations for manual
// minor rows.
type MinorRequirementRepository interface {
	List(ctx context.Context, ownerID string) ([]models.MinorRequirement, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.MinorRequirement, error)
	Create(ctx context.Context, row *models.MinorRequirement) error
	Update(ctx context.Context, row *models.MinorRequirement) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type minorRequirementRepository struct {
	db *gorm.DB
}

// NewMinorRequirementRepository instantiates a GORM-backed repository.
func NewMinorRequirementRepository(db *gorm.DB) MinorRequirementRepository {
	return &minorRequirementRepository{db: db}
}

func (r *minorRequirementRepository) List(ctx context.Context, ownerID string) ([]models.MinorRequirement, error) {
	var rows []models.MinorRequirement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("course_code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *minorRequirementRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.MinorRequirement, error) {
	var row models.MinorRequirement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&row, id).Error; err != nil {
		return models.MinorRequirement{}, err
	}

	return row, nil
}

func (r *minorRequirementRepository) Create(ctx context.Context, row *models.MinorRequirement) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *minorRequirementRepository) Update(ctx context.Context, row *models.MinorRequirement) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *minorRequirementRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.MinorRequirement{}, id).Error
}
