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

// ErrApplicationNotFound indicates the requested application does not
// exist for the caller.
var ErrApplicationNotFound = errors.New("application not found")

const applicationDateLayout = "2006-01-02"

// CareerService exposes career-board use cases.
type CareerService interface {
	List(ctx context.Context, ownerID string, status string) ([]dto.ApplicationResponse, error)
	Create(ctx context.Context, ownerID string, payload dto.ApplicationCreateRequest) (dto.ApplicationResponse, error)
	Update(ctx context.Context, ownerID string, id uint, payload dto.ApplicationUpdateRequest) (dto.ApplicationResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
}

type careerService struct {
	repo      repository.ApplicationRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCareerService builds a new career service.
func NewCareerService(repo repository.ApplicationRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) CareerService {
	return &careerService{
		repo:      repo,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "career_service").Logger(),
	}
}

func (s *careerService) List(ctx context.Context, ownerID string, status string) ([]dto.ApplicationResponse, error) {
	applications, err := s.repo.List(ctx, ownerID, status)
	if err != nil {
		return nil, err
	}

	return dto.NewApplicationResponseSlice(applications), nil
}

func (s *careerService) Create(ctx context.Context, ownerID string, payload dto.ApplicationCreateRequest) (dto.ApplicationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ApplicationResponse{}, err
	}

	application := models.Application{
		OwnerID:             ownerID,
		Type:                "Internship",
		CompanyOrganization: payload.CompanyOrganization,
		Position:            payload.Position,
		Status:              models.ApplicationStatusApplied,
		InterviewTime:       payload.InterviewTime,
		Notes:               payload.Notes,
		URL:                 payload.URL,
	}
	if payload.Type != "" {
		application.Type = payload.Type
	}
	if payload.Status != "" {
		application.Status = payload.Status
	}

	var err error
	if application.AppliedDate, err = parseApplicationDate(payload.AppliedDate); err != nil {
		return dto.ApplicationResponse{}, err
	}
	if application.Deadline, err = parseApplicationDate(payload.Deadline); err != nil {
		return dto.ApplicationResponse{}, err
	}
	if application.InterviewDate, err = parseApplicationDate(payload.InterviewDate); err != nil {
		return dto.ApplicationResponse{}, err
	}

	if err := s.repo.Create(ctx, &application); err != nil {
		return dto.ApplicationResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "application", dto.ChangeActionCreated, application.ID)

	return dto.NewApplicationResponse(application), nil
}

func (s *careerService) Update(ctx context.Context, ownerID string, id uint, payload dto.ApplicationUpdateRequest) (dto.ApplicationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ApplicationResponse{}, err
	}

	application, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, ErrApplicationNotFound
		}

		return dto.ApplicationResponse{}, err
	}

	if payload.Type != nil {
		application.Type = *payload.Type
	}
	if payload.CompanyOrganization != nil {
		application.CompanyOrganization = *payload.CompanyOrganization
	}
	if payload.Position != nil {
		application.Position = *payload.Position
	}
	if payload.Status != nil {
		application.Status = *payload.Status
	}
	if payload.AppliedDate != nil {
		if application.AppliedDate, err = parseApplicationDate(payload.AppliedDate); err != nil {
			return dto.ApplicationResponse{}, err
		}
	}
	if payload.Deadline != nil {
		if application.Deadline, err = parseApplicationDate(payload.Deadline); err != nil {
			return dto.ApplicationResponse{}, err
		}
	}
	if payload.InterviewDate != nil {
		if application.InterviewDate, err = parseApplicationDate(payload.InterviewDate); err != nil {
			return dto.ApplicationResponse{}, err
		}
	}
	if payload.InterviewTime != nil {
		application.InterviewTime = *payload.InterviewTime
	}
	if payload.Notes != nil {
		application.Notes = *payload.Notes
	}
	if payload.URL != nil {
		application.URL = *payload.URL
	}

	if err := s.repo.Update(ctx, &application); err != nil {
		return dto.ApplicationResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "application", dto.ChangeActionUpdated, application.ID)

	return dto.NewApplicationResponse(application), nil
}

func (s *careerService) Delete(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}

		return err
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "application", dto.ChangeActionDeleted, id)

	return nil
}

func parseApplicationDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(applicationDateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &parsed, nil
}
