package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// AssignmentFilter describes search and list options for assignments.
type AssignmentFilter struct {
	ClassID   uint
	Search    string
	Completed *bool
	Graded    *bool
	DueBefore *time.Time
	DueAfter  *time.Time
}

// AssignmentRepository defines persistence operations for assignments.
// Every query is scoped to the owning user.
type AssignmentRepository interface {
	List(ctx context.Context, ownerID string) ([]models.Assignment, error)
	ListWithFilter(ctx context.Context, ownerID string, filter AssignmentFilter) ([]models.Assignment, error)
	ListGraded(ctx context.Context, ownerID string) ([]models.Assignment, error)
	ListPending(ctx context.Context, ownerID string) ([]models.Assignment, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	CreateBatch(ctx context.Context, assignments []*models.Assignment) error
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, ownerID string, id uint) error
	DeleteByClass(ctx context.Context, ownerID string, classID uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) List(ctx context.Context, ownerID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("due_date ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) ListWithFilter(ctx context.Context, ownerID string, filter AssignmentFilter) ([]models.Assignment, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.ClassID != 0 {
		query = query.Where("class_id = ?", filter.ClassID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filter.Search)) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Completed != nil {
		query = query.Where("is_completed = ?", *filter.Completed)
	}
	if filter.Graded != nil {
		query = query.Where("is_graded = ?", *filter.Graded)
	}
	if filter.DueBefore != nil {
		query = query.Where("due_date < ?", *filter.DueBefore)
	}
	if filter.DueAfter != nil {
		query = query.Where("due_date >= ?", *filter.DueAfter)
	}

	var assignments []models.Assignment
	if err := query.Order("due_date ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) ListGraded(ctx context.Context, ownerID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_graded = ? AND earned_points IS NOT NULL", ownerID, true).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) ListPending(ctx context.Context, ownerID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_graded = ?", ownerID, false).
		Order("due_date ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&assignment, id).Error; err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) CreateBatch(ctx context.Context, assignments []*models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(assignments).Error
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Assignment{}, id).Error
}

func (r *assignmentRepository) DeleteByClass(ctx context.Context, ownerID string, classID uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND class_id = ?", ownerID, classID).
		Delete(&models.Assignment{}).Error
}
