package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// ClassRepository defines persistence operations for classes. Every query
// is scoped to the owning user.
type ClassRepository interface {
	List(ctx context.Context, ownerID string) ([]models.Class, error)
	ListActive(ctx context.Context, ownerID string) ([]models.Class, error)
	ListCompleted(ctx context.Context, ownerID string) ([]models.Class, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository instantiates a GORM-backed repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context, ownerID string) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("course_code ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) ListActive(ctx context.Context, ownerID string) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("course_code ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) ListCompleted(ctx context.Context, ownerID string) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_completed = ?", ownerID, true).
		Order("course_code ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&class, id).Error; err != nil {
		return models.Class{}, err
	}

	return class, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) Update(ctx context.Context, class *models.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Class{}, id).Error
}
