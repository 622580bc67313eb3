package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// TodoRepository defines persistence operations for tasks. Every query is
// scoped to the owning user.
type TodoRepository interface {
	List(ctx context.Context, ownerID string, includeCompleted bool) ([]models.Todo, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository instantiates a GORM-backed repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) List(ctx context.Context, ownerID string, includeCompleted bool) ([]models.Todo, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if !includeCompleted {
		query = query.Where("is_completed = ?", false)
	}

	var todos []models.Todo
	if err := query.Order("due_date ASC, created_at ASC").Find(&todos).Error; err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *todoRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.Todo, error) {
	var todo models.Todo
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&todo, id).Error; err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *todoRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Todo{}, id).Error
}
