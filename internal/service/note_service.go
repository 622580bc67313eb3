package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// ErrNoteNotFound indicates the requested note does not exist for the
// caller.
var ErrNoteNotFound = errors.New("note not found")

// ErrNoteTitleEmpty indicates the note title vanished after sanitization.
var ErrNoteTitleEmpty = errors.New("note title empty after sanitization")

// NoteService exposes study-note use cases. Titles are stripped to plain
// text; note bodies keep user formatting minus anything executable.
type NoteService interface {
	List(ctx context.Context, ownerID string, classID *uint, search string) ([]dto.NoteResponse, error)
	Get(ctx context.Context, ownerID string, id uint) (dto.NoteResponse, error)
	Create(ctx context.Context, ownerID string, payload dto.NoteCreateRequest) (dto.NoteResponse, error)
	Update(ctx context.Context, ownerID string, id uint, payload dto.NoteUpdateRequest) (dto.NoteResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
}

type noteService struct {
	repo          repository.NoteRepository
	events        ChangeBroadcaster
	validator     *validator.Validate
	titlePolicy   *bluemonday.Policy
	contentPolicy *bluemonday.Policy
	logger        zerolog.Logger
}

// NewNoteService builds a new note service.
func NewNoteService(repo repository.NoteRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) NoteService {
	return &noteService{
		repo:          repo,
		events:        events,
		validator:     validate,
		titlePolicy:   bluemonday.StrictPolicy(),
		contentPolicy: bluemonday.UGCPolicy(),
		logger:        logger.With().Str("component", "note_service").Logger(),
	}
}

func (s *noteService) List(ctx context.Context, ownerID string, classID *uint, search string) ([]dto.NoteResponse, error) {
	notes, err := s.repo.List(ctx, ownerID, classID, search)
	if err != nil {
		return nil, err
	}

	return dto.NewNoteResponseSlice(notes), nil
}

func (s *noteService) Get(ctx context.Context, ownerID string, id uint) (dto.NoteResponse, error) {
	note, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NoteResponse{}, ErrNoteNotFound
		}

		return dto.NoteResponse{}, err
	}

	return dto.NewNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, ownerID string, payload dto.NoteCreateRequest) (dto.NoteResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NoteResponse{}, err
	}

	title := strings.TrimSpace(s.titlePolicy.Sanitize(payload.Title))
	if title == "" {
		return dto.NoteResponse{}, ErrNoteTitleEmpty
	}

	note := models.Note{
		OwnerID: ownerID,
		ClassID: payload.ClassID,
		Title:   title,
		Content: s.contentPolicy.Sanitize(payload.Content),
	}

	if err := s.repo.Create(ctx, &note); err != nil {
		return dto.NoteResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "note", dto.ChangeActionCreated, note.ID)

	return dto.NewNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, ownerID string, id uint, payload dto.NoteUpdateRequest) (dto.NoteResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NoteResponse{}, err
	}

	note, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NoteResponse{}, ErrNoteNotFound
		}

		return dto.NoteResponse{}, err
	}

	if payload.ClassID != nil {
		note.ClassID = payload.ClassID
	}
	if payload.Title != nil {
		title := strings.TrimSpace(s.titlePolicy.Sanitize(*payload.Title))
		if title == "" {
			return dto.NoteResponse{}, ErrNoteTitleEmpty
		}
		note.Title = title
	}
	if payload.Content != nil {
		note.Content = s.contentPolicy.Sanitize(*payload.Content)
	}

	if err := s.repo.Update(ctx, &note); err != nil {
		return dto.NoteResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "note", dto.ChangeActionUpdated, note.ID)

	return dto.NewNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}

		return err
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "note", dto.ChangeActionDeleted, id)

	return nil
}
