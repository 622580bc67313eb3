package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// ApplicationRepository defines persistence operations for career-board
// entries. Every query is scoped to the owning user.
type ApplicationRepository interface {
	List(ctx context.Context, ownerID string, status string) ([]models.Application, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.Application, error)
	Create(ctx context.Context, application *models.Application) error
	Update(ctx context.Context, application *models.Application) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository instantiates a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) List(ctx context.Context, ownerID string, status string) ([]models.Application, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.Application
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&application, id).Error; err != nil {
		return models.Application{}, err
	}

	return application, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *applicationRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Application{}, id).Error
}
