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

// ErrAssignmentNotFound indicates the requested assignment does not exist
// for the caller.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrRecurrenceEndBeforeStart indicates a recurring request whose end
// date precedes its first due date.
var ErrRecurrenceEndBeforeStart = errors.New("recurrence end before first due date")

// AssignmentService exposes assignment domain use cases.
type AssignmentService interface {
	List(ctx context.Context, ownerID string, filter repository.AssignmentFilter) ([]dto.AssignmentResponse, error)
	Get(ctx context.Context, ownerID string, id uint) (dto.AssignmentResponse, error)
	Create(ctx context.Context, ownerID string, payload dto.AssignmentCreateRequest) ([]dto.AssignmentResponse, error)
	Update(ctx context.Context, ownerID string, id uint, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error)
	ToggleComplete(ctx context.Context, ownerID string, id uint) (dto.AssignmentResponse, error)
	Grade(ctx context.Context, ownerID string, id uint, payload dto.AssignmentGradeRequest) (dto.AssignmentResponse, error)
	AddManualGrade(ctx context.Context, ownerID string, payload dto.ManualGradeRequest) (dto.AssignmentResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	classes   repository.ClassRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, classes repository.ClassRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		classes:   classes,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "assignment_service").Logger(),
		now:       time.Now,
	}
}

func (s *assignmentService) List(ctx context.Context, ownerID string, filter repository.AssignmentFilter) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.ListWithFilter(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentResponseSlice(assignments), nil
}

func (s *assignmentService) Get(ctx context.Context, ownerID string, id uint) (dto.AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	return dto.NewAssignmentResponse(assignment), nil
}

// Create persists one assignment, or, for recurring requests, one row per
// week from the first due date through the recurrence end inclusive. Each
// generated row gets a numbered title suffix and stands alone afterwards.
func (s *assignmentService) Create(ctx context.Context, ownerID string, payload dto.AssignmentCreateRequest) ([]dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, err
	}

	if _, err := s.classes.GetByID(ctx, ownerID, payload.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}

		return nil, err
	}

	dueDate, err := time.Parse(time.RFC3339, payload.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", err)
	}

	totalPoints := 100.0
	if payload.TotalPoints != nil {
		totalPoints = *payload.TotalPoints
	}
	category := payload.Category
	if category == "" {
		category = "Homework"
	}

	base := models.Assignment{
		OwnerID:     ownerID,
		ClassID:     payload.ClassID,
		Title:       payload.Title,
		Description: payload.Description,
		Category:    category,
		TotalPoints: totalPoints,
		DueDate:     dueDate,
	}

	if !payload.IsRecurring {
		if err := s.repo.Create(ctx, &base); err != nil {
			return nil, err
		}

		s.logger.Info().Uint("assignment_id", base.ID).Msg("assignment created")
		s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionCreated, base.ID)

		return []dto.AssignmentResponse{dto.NewAssignmentResponse(base)}, nil
	}

	if payload.RecurrenceEnd == nil {
		return nil, errors.New("recurrence end required for recurring assignments")
	}
	recurrenceEnd, err := time.Parse(time.RFC3339, *payload.RecurrenceEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence end: %w", err)
	}
	if recurrenceEnd.Before(dueDate) {
		return nil, ErrRecurrenceEndBeforeStart
	}

	batch := make([]*models.Assignment, 0)
	index := 1
	for due := dueDate; !due.After(recurrenceEnd); due = due.AddDate(0, 0, 7) {
		row := base
		row.Title = fmt.Sprintf("%s %d", payload.Title, index)
		row.DueDate = due
		batch = append(batch, &row)
		index++
	}

	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(batch)).Str("title", payload.Title).Msg("recurring assignments expanded")
	s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionCreated, batch[0].ID)

	responses := make([]dto.AssignmentResponse, 0, len(batch))
	for _, row := range batch {
		responses = append(responses, dto.NewAssignmentResponse(*row))
	}

	return responses, nil
}

func (s *assignmentService) Update(ctx context.Context, ownerID string, id uint, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	if payload.Title != nil {
		assignment.Title = *payload.Title
	}
	if payload.Description != nil {
		assignment.Description = *payload.Description
	}
	if payload.Category != nil {
		assignment.Category = *payload.Category
	}
	if payload.TotalPoints != nil {
		assignment.TotalPoints = *payload.TotalPoints
	}
	if payload.EarnedPoints != nil {
		assignment.EarnedPoints = payload.EarnedPoints
		assignment.IsGraded = true
	}
	if payload.IsCompleted != nil {
		assignment.IsCompleted = *payload.IsCompleted
	}
	if payload.IsGraded != nil {
		assignment.IsGraded = *payload.IsGraded
	}
	if payload.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *payload.DueDate)
		if err != nil {
			return dto.AssignmentResponse{}, fmt.Errorf("invalid due date: %w", err)
		}
		assignment.DueDate = dueDate
	}

	if err := s.repo.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionUpdated, assignment.ID)

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) ToggleComplete(ctx context.Context, ownerID string, id uint) (dto.AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	assignment.IsCompleted = !assignment.IsCompleted

	if err := s.repo.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionUpdated, assignment.ID)

	return dto.NewAssignmentResponse(assignment), nil
}

// Grade records earned points and marks the assignment graded and
// completed in one step.
func (s *assignmentService) Grade(ctx context.Context, ownerID string, id uint, payload dto.AssignmentGradeRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	earned := payload.EarnedPoints
	assignment.EarnedPoints = &earned
	if payload.TotalPoints != nil {
		assignment.TotalPoints = *payload.TotalPoints
	}
	assignment.IsGraded = true
	assignment.IsCompleted = true

	if err := s.repo.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Uint("assignment_id", assignment.ID).Float64("earned", earned).Msg("assignment graded")
	s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionUpdated, assignment.ID)

	return dto.NewAssignmentResponse(assignment), nil
}

// AddManualGrade inserts an already-graded entry straight into the
// gradebook, bypassing the completion workflow.
func (s *assignmentService) AddManualGrade(ctx context.Context, ownerID string, payload dto.ManualGradeRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	if _, err := s.classes.GetByID(ctx, ownerID, payload.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrClassNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	category := payload.Category
	if category == "" {
		category = "Other"
	}

	earned := payload.EarnedPoints
	assignment := models.Assignment{
		OwnerID:      ownerID,
		ClassID:      payload.ClassID,
		Title:        payload.Title,
		Category:     category,
		TotalPoints:  payload.TotalPoints,
		EarnedPoints: &earned,
		IsCompleted:  true,
		IsGraded:     true,
		DueDate:      s.now(),
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionCreated, assignment.ID)

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Delete(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}

		return err
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "assignment", dto.ChangeActionDeleted, id)

	return nil
}
