package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/academics"
	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// ErrSemesterNotFound indicates the requested planned term does not exist
// for the caller.
var ErrSemesterNotFound = errors.New("semester not found")

// SemesterService exposes degree-planner term use cases. Courses live
// embedded in their semester; list updates replace the whole list.
type SemesterService interface {
	List(ctx context.Context, ownerID string) ([]dto.SemesterResponse, error)
	Get(ctx context.Context, ownerID string, id uint) (dto.SemesterResponse, error)
	Create(ctx context.Context, ownerID string, payload dto.SemesterCreateRequest) (dto.SemesterResponse, error)
	Update(ctx context.Context, ownerID string, id uint, payload dto.SemesterUpdateRequest) (dto.SemesterResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
}

type semesterService struct {
	repo      repository.SemesterRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSemesterService builds a new semester service.
func NewSemesterService(repo repository.SemesterRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) SemesterService {
	return &semesterService{
		repo:      repo,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "semester_service").Logger(),
	}
}

func (s *semesterService) List(ctx context.Context, ownerID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewSemesterResponseSlice(semesters), nil
}

func (s *semesterService) Get(ctx context.Context, ownerID string, id uint) (dto.SemesterResponse, error) {
	semester, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SemesterResponse{}, ErrSemesterNotFound
		}

		return dto.SemesterResponse{}, err
	}

	return dto.NewSemesterResponse(semester), nil
}

func (s *semesterService) Create(ctx context.Context, ownerID string, payload dto.SemesterCreateRequest) (dto.SemesterResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SemesterResponse{}, err
	}

	courses, err := encodePlannedCourses(payload.Courses)
	if err != nil {
		return dto.SemesterResponse{}, err
	}

	semester := models.Semester{
		OwnerID: ownerID,
		Name:    payload.Name,
		Order:   payload.Order,
		Courses: courses,
	}

	if err := s.repo.Create(ctx, &semester); err != nil {
		return dto.SemesterResponse{}, err
	}

	s.logger.Info().Uint("semester_id", semester.ID).Str("name", semester.Name).Msg("semester created")
	s.events.Announce(ctx, ownerID, "semester", dto.ChangeActionCreated, semester.ID)

	return dto.NewSemesterResponse(semester), nil
}

func (s *semesterService) Update(ctx context.Context, ownerID string, id uint, payload dto.SemesterUpdateRequest) (dto.SemesterResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SemesterResponse{}, err
	}

	semester, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SemesterResponse{}, ErrSemesterNotFound
		}

		return dto.SemesterResponse{}, err
	}

	if payload.Name != nil {
		semester.Name = *payload.Name
	}
	if payload.Order != nil {
		semester.Order = *payload.Order
	}
	if payload.Courses != nil {
		courses, err := encodePlannedCourses(*payload.Courses)
		if err != nil {
			return dto.SemesterResponse{}, err
		}
		semester.Courses = courses
	}

	if err := s.repo.Update(ctx, &semester); err != nil {
		return dto.SemesterResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "semester", dto.ChangeActionUpdated, semester.ID)

	return dto.NewSemesterResponse(semester), nil
}

func (s *semesterService) Delete(ctx context.Context, ownerID string, id uint) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}

		return err
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.events.Announce(ctx, ownerID, "semester", dto.ChangeActionDeleted, id)

	return nil
}

// encodePlannedCourses normalizes the embedded course list for storage.
// Courses without a client-assigned id get one.
func encodePlannedCourses(requests []dto.PlannedCourseRequest) ([]byte, error) {
	courses := make([]academics.PlannedCourse, 0, len(requests))
	for _, req := range requests {
		course := academics.PlannedCourse{
			ID:           req.ID,
			CourseCode:   req.CourseCode,
			CourseName:   req.CourseName,
			CreditHours:  3,
			Category:     req.Category,
			CoreCategory: req.CoreCategory,
			Status:       req.Status,
		}
		if course.ID == "" {
			course.ID = uuid.NewString()
		}
		if req.CreditHours != nil {
			course.CreditHours = *req.CreditHours
		}
		if course.Status == "" {
			course.Status = models.StatusNotStarted
		}
		courses = append(courses, course)
	}

	return json.Marshal(courses)
}
