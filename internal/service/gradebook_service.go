package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trackademic/trackademic-api/internal/academics"
	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/observability"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// GradebookService produces the gradebook view and GPA summaries. Results
// are cached per owner until the next mutation drops the cache.
type GradebookService interface {
	GetGradebook(ctx context.Context, ownerID string) (dto.GradebookResponse, error)
	GetGPASummary(ctx context.Context, ownerID string) (dto.GPASummaryResponse, error)
	Project(ctx context.Context, ownerID string, payload dto.GradeProjectionRequest) (dto.GradeProjectionResponse, error)
}

type gradebookService struct {
	snapshots SnapshotBuilder
	classes   repository.ClassRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewGradebookService builds the gradebook aggregator.
func NewGradebookService(snapshots SnapshotBuilder, classes repository.ClassRepository, cache *redis.Client, ttl time.Duration, validate *validator.Validate, logger zerolog.Logger) GradebookService {
	return &gradebookService{
		snapshots: snapshots,
		classes:   classes,
		cache:     cache,
		cacheTTL:  ttl,
		validator: validate,
		logger:    logger.With().Str("component", "gradebook_service").Logger(),
		tracer:    otel.Tracer("github.com/trackademic/trackademic-api/internal/service/gradebook"),
	}
}

func (s *gradebookService) GetGradebook(ctx context.Context, ownerID string) (dto.GradebookResponse, error) {
	cacheKey := gradebookCacheKey(ownerID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.GradebookResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("owner_id", ownerID).Msg("gradebook cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read gradebook cache")
		}
	}

	spanCtx, span := s.tracer.Start(ctx, "gradebook.compute", trace.WithAttributes(
		attribute.String("owner_id", ownerID),
	))
	defer span.End()

	snapshot, err := s.snapshots.Build(spanCtx, ownerID)
	if err != nil {
		span.RecordError(err)
		return dto.GradebookResponse{}, err
	}

	active, err := s.classes.ListActive(spanCtx, ownerID)
	if err != nil {
		span.RecordError(err)
		return dto.GradebookResponse{}, err
	}

	response := dto.GradebookResponse{
		Classes: make([]dto.GradebookClass, 0, len(active)),
		Weights: snapshot.Weights,
	}
	for _, class := range active {
		response.Classes = append(response.Classes, dto.GradebookClass{
			Class: dto.NewClassResponse(class),
			Grade: snapshot.ClassGrade(class.ID, nil, academics.ScaleCollapsed),
		})
	}

	observability.EngineRecomputesTotal().WithLabelValues("gradebook").Inc()

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store gradebook cache")
			}
		}
	}

	return response, nil
}

func (s *gradebookService) GetGPASummary(ctx context.Context, ownerID string) (dto.GPASummaryResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "gradebook.gpa_summary", trace.WithAttributes(
		attribute.String("owner_id", ownerID),
	))
	defer span.End()

	snapshot, err := s.snapshots.Build(spanCtx, ownerID)
	if err != nil {
		span.RecordError(err)
		return dto.GPASummaryResponse{}, err
	}

	observability.EngineRecomputesTotal().WithLabelValues("gpa").Inc()

	return dto.GPASummaryResponse{
		SemesterGPA:   snapshot.SemesterGPA(),
		CumulativeGPA: snapshot.CumulativeGPA(),
		TotalCredits:  snapshot.TotalCredits(),
		PriorGPA:      snapshot.Profile.CurrentGPA,
		PriorCredits:  snapshot.Profile.CompletedCreditHours,
	}, nil
}

// Project computes a hypothetical grade with anticipated scores applied
// to pending assignments. Projections never touch the cache.
func (s *gradebookService) Project(ctx context.Context, ownerID string, payload dto.GradeProjectionRequest) (dto.GradeProjectionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GradeProjectionResponse{}, err
	}

	snapshot, err := s.snapshots.Build(ctx, ownerID)
	if err != nil {
		return dto.GradeProjectionResponse{}, err
	}

	return dto.GradeProjectionResponse{
		Current:   snapshot.ClassGrade(payload.ClassID, nil, academics.ScaleCollapsed),
		Projected: snapshot.ClassGrade(payload.ClassID, payload.Anticipated, academics.ScaleCollapsed),
	}, nil
}
