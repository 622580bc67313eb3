package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// ErrTodoNotFound indicates the requested task does not exist for the
// caller.
var ErrTodoNotFound = errors.New("todo not found")

// TodoService exposes personal-task use cases.
type TodoService interface {
	List(ctx context.Context, ownerID string, includeCompleted bool) ([]dto.TodoResponse, error)
	Create(ctx context.Context, ownerID string, payload dto.TodoCreateRequest) (dto.TodoResponse, error)
	Update(ctx context.Context, ownerID string, id uint, payload dto.TodoUpdateRequest) (dto.TodoResponse, error)
	ToggleComplete(ctx context.Context, ownerID string, id uint) (dto.TodoResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
}

type todoService struct {
	repo      repository.TodoRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTodoService builds a new todo service.
func NewTodoService(repo repository.TodoRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) TodoService {
	return &todoService{
		repo:      repo,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "todo_service").Logger(),
		now:       time.Now,
	}
}

func (s *todoService) List(ctx context.Context, ownerID string, includeCompleted bool) ([]dto.TodoResponse, error) {
	todos, err := s.repo.List(ctx, ownerID, includeCompleted)
	if err != nil {
		return nil, err
	}

	return dto.NewTodoResponseSlice(todos), nil
}

func (s *todoService) Create(ctx context.Context, ownerID string, payload dto.TodoCreateRequest) (dto.TodoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TodoResponse{}, err
	}

	todo := models.Todo{
		OwnerID:     ownerID,
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    models.PriorityMedium,
	}
	if payload.Priority != "" {
		todo.Priority = payload.Priority
	}
	if payload.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *payload.DueDate)
		if err != nil {
			return dto.TodoResponse{}, fmt.Errorf("invalid due date: %w", err)
		}
		todo.DueDate = &dueDate
	}

	if err := s.repo.Create(ctx, &todo); err != nil {
		return dto.TodoResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "todo", dto.ChangeActionCreated, todo.ID)

	return dto.NewTodoResponse(todo), nil
}

func (s *todoService) Update(ctx context.Context, ownerID string, id uint, payload dto.TodoUpdateRequest) (dto.TodoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TodoResponse{}, err
	}

	todo, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TodoResponse{}, ErrTodoNotFound
		}

		return dto.TodoResponse{}, err
	}

	if payload.Title != nil {
		todo.Title = *payload.Title
	}
	if payload.Description != nil {
		todo.Description = *payload.Description
	}
	if payload.Priority != nil {
		todo.Priority = *payload.Priority
	}
	if payload.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *payload.DueDate)
		if err != nil {
			return dto.TodoResponse{}, fmt.Errorf("invalid due date: %w", err)
		}
		todo.DueDate = &dueDate
	}

	if err := s.repo.Update(ctx, &todo); err != nil {
		return dto.TodoResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "todo", dto.ChangeActionUpdated, todo.ID)

	return dto.NewTodoResponse(todo), nil
}

func (s *todoService) ToggleComplete(ctx context.Context, ownerID string, id uint) (dto.TodoResponse, error) {
	todo, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TodoResponse{}, ErrTodoNotFound
		}

		return dto.TodoResponse{}, err
	}

	todo.IsCompleted = !todo.IsCompleted
	if todo.IsCompleted {
		completedAt := s.now()
		todo.CompletedAt = &completedAt
	} else {
		todo.CompletedAt = nil
	}

	if err := s.repo.Update(ctx, &todo); err != nil {
		return dto.TodoResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "todo", dto.ChangeActionUpdated, todo.ID)

	return dto.NewTodoResponse(todo), nil
}

func (s *todoService) Delete(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}

		return err
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "todo", dto.ChangeActionDeleted, id)

	return nil
}
