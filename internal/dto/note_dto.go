package dto

import (
	"time"

	"github.com/trackademic/trackademic-api/internal/models"
)

// NoteCreateRequest describes the payload for adding a note.
type NoteCreateRequest struct {
	ClassID *uint  `json:"class_id"`
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"omitempty,max=50000"`
}

// NoteUpdateRequest describes the payload for updating a note.
type NoteUpdateRequest struct {
	ClassID *uint   `json:"class_id"`
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,max=50000"`
}

// NoteResponse is the serialized representation returned to API clients.
type NoteResponse struct {
	ID        uint      `json:"id"`
	ClassID   *uint     `json:"class_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNoteResponse converts a model into a DTO.
func NewNoteResponse(model models.Note) NoteResponse {
	return NoteResponse{
		ID:        model.ID,
		ClassID:   model.ClassID,
		Title:     model.Title,
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewNoteResponseSlice converts a slice of models into DTOs.
func NewNoteResponseSlice(notes []models.Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, NewNoteResponse(note))
	}

	return responses
}
