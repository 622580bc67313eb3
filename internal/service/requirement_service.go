package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// ErrRequirementNotFound indicates the requested requirement row does not
// exist for the caller.
var ErrRequirementNotFound = errors.New("requirement not found")

// RequirementService exposes the manual degree-requirement collections:
// core rows keyed by status string, major and minor rows keyed by
// completion flags.
type RequirementService interface {
	ListCore(ctx context.Context, ownerID string) ([]dto.CoreRequirementResponse, error)
	CreateCore(ctx context.Context, ownerID string, payload dto.CoreRequirementCreateRequest) (dto.CoreRequirementResponse, error)
	UpdateCore(ctx context.Context, ownerID string, id uint, payload dto.CoreRequirementUpdateRequest) (dto.CoreRequirementResponse, error)
	DeleteCore(ctx context.Context, ownerID string, id uint) error

	ListMajor(ctx context.Context, ownerID string) ([]dto.TrackRequirementResponse, error)
	CreateMajor(ctx context.Context, ownerID string, payload dto.TrackRequirementCreateRequest) (dto.TrackRequirementResponse, error)
	UpdateMajor(ctx context.Context, ownerID string, id uint, payload dto.TrackRequirementUpdateRequest) (dto.TrackRequirementResponse, error)
	DeleteMajor(ctx context.Context, ownerID string, id uint) error

	ListMinor(ctx context.Context, ownerID string) ([]dto.TrackRequirementResponse, error)
	CreateMinor(ctx context.Context, ownerID string, payload dto.TrackRequirementCreateRequest) (dto.TrackRequirementResponse, error)
	UpdateMinor(ctx context.Context, ownerID string, id uint, payload dto.TrackRequirementUpdateRequest) (dto.TrackRequirementResponse, error)
	DeleteMinor(ctx context.Context, ownerID string, id uint) error
}

type requirementService struct {
	core      repository.CoreRequirementRepository
	major     repository.MajorRequirementRepository
	minor     repository.MinorRequirementRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRequirementService builds a new requirement service.
func NewRequirementService(core repository.CoreRequirementRepository, major repository.MajorRequirementRepository, minor repository.MinorRequirementRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) RequirementService {
	return &requirementService{
		core:      core,
		major:     major,
		minor:     minor,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "requirement_service").Logger(),
	}
}

func (s *requirementService) ListCore(ctx context.Context, ownerID string) ([]dto.CoreRequirementResponse, error) {
	rows, err := s.core.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewCoreRequirementResponseSlice(rows), nil
}

func (s *requirementService) CreateCore(ctx context.Context, ownerID string, payload dto.CoreRequirementCreateRequest) (dto.CoreRequirementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CoreRequirementResponse{}, err
	}

	row := models.CoreRequirement{
		OwnerID:     ownerID,
		CourseCode:  payload.CourseCode,
		CourseName:  payload.CourseName,
		CreditHours: 3,
		Category:    payload.Category,
		Status:      models.StatusNotStarted,
		IsTransfer:  payload.IsTransfer,
	}
	if payload.CreditHours != nil {
		row.CreditHours = *payload.CreditHours
	}
	if payload.Status != "" {
		row.Status = payload.Status
	}

	if err := s.core.Create(ctx, &row); err != nil {
		return dto.CoreRequirementResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "core_requirement", dto.ChangeActionCreated, row.ID)

	return dto.NewCoreRequirementResponse(row), nil
}

func (s *requirementService) UpdateCore(ctx context.Context, ownerID string, id uint, payload dto.CoreRequirementUpdateRequest) (dto.CoreRequirementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CoreRequirementResponse{}, err
	}

	row, err := s.core.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CoreRequirementResponse{}, ErrRequirementNotFound
		}

		return dto.CoreRequirementResponse{}, err
	}

	if payload.CourseCode != nil {
		row.CourseCode = *payload.CourseCode
	}
	if payload.CourseName != nil {
		row.CourseName = *payload.CourseName
	}
	if payload.CreditHours != nil {
		row.CreditHours = *payload.CreditHours
	}
	if payload.Category != nil {
		row.Category = *payload.Category
	}
	if payload.Status != nil {
		row.Status = *payload.Status
	}
	if payload.IsTransfer != nil {
		row.IsTransfer = *payload.IsTransfer
	}

	if err := s.core.Update(ctx, &row); err != nil {
		return dto.CoreRequirementResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "core_requirement", dto.ChangeActionUpdated, row.ID)

	return dto.NewCoreRequirementResponse(row), nil
}

func (s *requirementService) DeleteCore(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.core.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequirementNotFound
		}

		return err
	}

	if err := s.core.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "core_requirement", dto.ChangeActionDeleted, id)

	return nil
}

func (s *requirementService) ListMajor(ctx context.Context, ownerID string) ([]dto.TrackRequirementResponse, error) {
	rows, err := s.major.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewMajorRequirementResponseSlice(rows), nil
}

func (s *requirementService) CreateMajor(ctx context.Context, ownerID string, payload dto.TrackRequirementCreateRequest) (dto.TrackRequirementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	row := models.MajorRequirement{
		OwnerID:     ownerID,
		CourseCode:  payload.CourseCode,
		CourseName:  payload.CourseName,
		CreditHours: 3,
		IsCompleted: payload.IsCompleted,
		IsTransfer:  payload.IsTransfer,
	}
	if payload.CreditHours != nil {
		row.CreditHours = *payload.CreditHours
	}

	if err := s.major.Create(ctx, &row); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "major_requirement", dto.ChangeActionCreated, row.ID)

	return dto.NewMajorRequirementResponse(row), nil
}

func (s *requirementService) UpdateMajor(ctx context.Context, ownerID string, id uint, payload dto.TrackRequirementUpdateRequest) (dto.TrackRequirementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	row, err := s.major.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TrackRequirementResponse{}, ErrRequirementNotFound
		}

		return dto.TrackRequirementResponse{}, err
	}

	if payload.CourseCode != nil {
		row.CourseCode = *payload.CourseCode
	}
	if payload.CourseName != nil {
		row.CourseName = *payload.CourseName
	}
	if payload.CreditHours != nil {
		row.CreditHours = *payload.CreditHours
	}
	if payload.IsCompleted != nil {
		row.IsCompleted = *payload.IsCompleted
	}
	if payload.IsTransfer != nil {
		row.IsTransfer = *payload.IsTransfer
	}

	if err := s.major.Update(ctx, &row); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "major_requirement", dto.ChangeActionUpdated, row.ID)

	return dto.NewMajorRequirementResponse(row), nil
}

func (s *requirementService) DeleteMajor(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.major.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequirementNotFound
		}

		return err
	}

	if err := s.major.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "major_requirement", dto.ChangeActionDeleted, id)

	return nil
}

func (s *requirementService) ListMinor(ctx context.Context, ownerID string) ([]dto.TrackRequirementResponse, error) {
	rows, err := s.minor.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewMinorRequirementResponseSlice(rows), nil
}

func (s *requirementService) CreateMinor(ctx context.Context, ownerID string, payload dto.TrackRequirementCreateRequest) (dto.TrackRequirementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	row := models.MinorRequirement{
		OwnerID:     ownerID,
		CourseCode:  payload.CourseCode,
		CourseName:  payload.CourseName,
		CreditHours: 3,
		IsCompleted: payload.IsCompleted,
		IsTransfer:  payload.IsTransfer,
	}
	if payload.CreditHours != nil {
		row.CreditHours = *payload.CreditHours
	}

	if err := s.minor.Create(ctx, &row); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "minor_requirement", dto.ChangeActionCreated, row.ID)

	return dto.NewMinorRequirementResponse(row), nil
}

func (s *requirementService) UpdateMinor(ctx context.Context, ownerID string, id uint, payload dto.TrackRequirementUpdateRequest) (dto.TrackRequirementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	row, err := s.minor.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TrackRequirementResponse{}, ErrRequirementNotFound
		}

		return dto.TrackRequirementResponse{}, err
	}

	if payload.CourseCode != nil {
		row.CourseCode = *payload.CourseCode
	}
	if payload.CourseName != nil {
		row.CourseName = *payload.CourseName
	}
	if payload.CreditHours != nil {
		row.CreditHours = *payload.CreditHours
	}
	if payload.IsCompleted != nil {
		row.IsCompleted = *payload.IsCompleted
	}
	if payload.IsTransfer != nil {
		row.IsTransfer = *payload.IsTransfer
	}

	if err := s.minor.Update(ctx, &row); err != nil {
		return dto.TrackRequirementResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "minor_requirement", dto.ChangeActionUpdated, row.ID)

	return dto.NewMinorRequirementResponse(row), nil
}

func (s *requirementService) DeleteMinor(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.minor.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequirementNotFound
		}

		return err
	}

	if err := s.minor.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "minor_requirement", dto.ChangeActionDeleted, id)

	return nil
}
