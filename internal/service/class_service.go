package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// ErrClassNotFound indicates the requested class does not exist for the
// caller.
var ErrClassNotFound = errors.New("class not found")

// ClassService exposes class domain use cases.
type ClassService interface {
	List(ctx context.Context, ownerID string) ([]dto.ClassResponse, error)
	Get(ctx context.Context, ownerID string, id uint) (dto.ClassResponse, error)
	Create(ctx context.Context, ownerID string, payload dto.ClassCreateRequest) (dto.ClassResponse, error)
	Update(ctx context.Context, ownerID string, id uint, payload dto.ClassUpdateRequest) (dto.ClassResponse, error)
	Archive(ctx context.Context, ownerID string, id uint, payload dto.ClassArchiveRequest) (dto.ClassResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
}

type classService struct {
	repo      repository.ClassRepository
	work      repository.AssignmentRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewClassService builds a new class service.
func NewClassService(repo repository.ClassRepository, work repository.AssignmentRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) ClassService {
	return &classService{
		repo:      repo,
		work:      work,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "class_service").Logger(),
	}
}

func (s *classService) List(ctx context.Context, ownerID string) ([]dto.ClassResponse, error) {
	classes, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewClassResponseSlice(classes), nil
}

func (s *classService) Get(ctx context.Context, ownerID string, id uint) (dto.ClassResponse, error) {
	class, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClassResponse{}, ErrClassNotFound
		}

		return dto.ClassResponse{}, err
	}

	return dto.NewClassResponse(class), nil
}

func (s *classService) Create(ctx context.Context, ownerID string, payload dto.ClassCreateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	class := models.Class{
		OwnerID:      ownerID,
		CourseCode:   payload.CourseCode,
		CourseName:   payload.CourseName,
		Professor:    payload.Professor,
		CreditHours:  3,
		Category:     models.CategoryMajor,
		CoreCategory: payload.CoreCategory,
		StartTime:    payload.StartTime,
		EndTime:      payload.EndTime,
		Semester:     payload.Semester,
		Color:        payload.Color,
		IsActive:     true,
	}
	if payload.CreditHours != nil {
		class.CreditHours = *payload.CreditHours
	}
	if payload.Category != "" {
		class.Category = payload.Category
	}
	if len(payload.Days) > 0 {
		days, err := json.Marshal(payload.Days)
		if err != nil {
			return dto.ClassResponse{}, err
		}
		class.Days = days
	}

	if err := s.repo.Create(ctx, &class); err != nil {
		return dto.ClassResponse{}, err
	}

	s.logger.Info().Uint("class_id", class.ID).Str("course_code", class.CourseCode).Msg("class created")
	s.events.Announce(ctx, ownerID, "class", dto.ChangeActionCreated, class.ID)

	return dto.NewClassResponse(class), nil
}

func (s *classService) Update(ctx context.Context, ownerID string, id uint, payload dto.ClassUpdateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	class, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClassResponse{}, ErrClassNotFound
		}

		return dto.ClassResponse{}, err
	}

	if payload.CourseCode != nil {
		class.CourseCode = *payload.CourseCode
	}
	if payload.CourseName != nil {
		class.CourseName = *payload.CourseName
	}
	if payload.Professor != nil {
		class.Professor = *payload.Professor
	}
	if payload.CreditHours != nil {
		class.CreditHours = *payload.CreditHours
	}
	if payload.Category != nil {
		class.Category = *payload.Category
	}
	if payload.CoreCategory != nil {
		class.CoreCategory = *payload.CoreCategory
	}
	if payload.Days != nil {
		days, err := json.Marshal(*payload.Days)
		if err != nil {
			return dto.ClassResponse{}, err
		}
		class.Days = days
	}
	if payload.StartTime != nil {
		class.StartTime = *payload.StartTime
	}
	if payload.EndTime != nil {
		class.EndTime = *payload.EndTime
	}
	if payload.Semester != nil {
		class.Semester = *payload.Semester
	}
	if payload.Color != nil {
		class.Color = *payload.Color
	}
	if payload.IsActive != nil {
		class.IsActive = *payload.IsActive
	}
	if payload.IsCompleted != nil {
		class.IsCompleted = *payload.IsCompleted
	}
	if payload.IsTransfer != nil {
		class.IsTransfer = *payload.IsTransfer
	}
	if payload.FinalGPA != nil {
		class.FinalGPA = payload.FinalGPA
	}
	if payload.Grade != nil {
		class.Grade = payload.Grade
	}

	if err := s.repo.Update(ctx, &class); err != nil {
		return dto.ClassResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "class", dto.ChangeActionUpdated, class.ID)

	return dto.NewClassResponse(class), nil
}

func (s *classService) Archive(ctx context.Context, ownerID string, id uint, payload dto.ClassArchiveRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	class, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClassResponse{}, ErrClassNotFound
		}

		return dto.ClassResponse{}, err
	}

	class.IsActive = payload.IsActive
	if !payload.IsActive {
		class.IsCompleted = true
	}
	if payload.FinalGPA != nil {
		class.FinalGPA = payload.FinalGPA
	}
	if payload.Grade != nil {
		class.Grade = payload.Grade
	}

	if err := s.repo.Update(ctx, &class); err != nil {
		return dto.ClassResponse{}, err
	}

	s.logger.Info().Uint("class_id", class.ID).Bool("is_active", class.IsActive).Msg("class archive state changed")
	s.events.Announce(ctx, ownerID, "class", dto.ChangeActionUpdated, class.ID)

	return dto.NewClassResponse(class), nil
}

func (s *classService) Delete(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}

		return err
	}

	// Assignments belong to their class; removing the class removes its
	// coursework too.
	if err := s.work.DeleteByClass(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Info().Uint("class_id", id).Msg("class deleted")
	s.events.Announce(ctx, ownerID, "class", dto.ChangeActionDeleted, id)

	return nil
}
