package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// SemesterRepository defines persistence operations for planned terms.
// Every query is scoped to the owning user.
type SemesterRepository interface {
	List(ctx context.Context, ownerID string) ([]models.Semester, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.Semester, error)
	Create(ctx context.Context, semester *models.Semester) error
	Update(ctx context.Context, semester *models.Semester) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type semesterRepository struct {
	db *gorm.DB
}

// NewSemesterRepository instantiates a GORM-backed repository.
func NewSemesterRepository(db *gorm.DB) SemesterRepository {
	return &semesterRepository{db: db}
}

func (r *semesterRepository) List(ctx context.Context, ownerID string) ([]models.Semester, error) {
	var semesters []models.Semester
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(`"order" ASC, id ASC`).
		Find(&semesters).Error; err != nil {
		return nil, err
	}

	return semesters, nil
}

func (r *semesterRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.Semester, error) {
	var semester models.Semester
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&semester, id).Error; err != nil {
		return models.Semester{}, err
	}

	return semester, nil
}

func (r *semesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}

func (r *semesterRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Semester{}, id).Error
}
