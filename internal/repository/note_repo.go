package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/models"
)

// NoteRepository defines persistence operations for notes. Every query is
// scoped to the owning user.
type NoteRepository interface {
	List(ctx context.Context, ownerID string, classID *uint, search string) ([]models.Note, error)
	GetByID(ctx context.Context, ownerID string, id uint) (models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, ownerID string, id uint) error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository instantiates a GORM-backed repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) List(ctx context.Context, ownerID string, classID *uint, search string) ([]models.Note, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if classID != nil {
		query = query.Where("class_id = ?", *classID)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var notes []models.Note
	if err := query.Order("updated_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, ownerID string, id uint) (models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&note, id).Error; err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Note{}, id).Error
}
