package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/observability"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// DegreeService produces the degree-planner progress view.
type DegreeService interface {
	GetProgress(ctx context.Context, ownerID string) (dto.DegreeProgressResponse, error)
}

type degreeService struct {
	snapshots SnapshotBuilder
	semesters repository.SemesterRepository
	core      repository.CoreRequirementRepository
	major     repository.MajorRequirementRepository
	minor     repository.MinorRequirementRepository
	profiles  repository.ProfileRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewDegreeService builds the degree-progress aggregator.
func NewDegreeService(
	snapshots SnapshotBuilder,
	semesters repository.SemesterRepository,
	core repository.CoreRequirementRepository,
	major repository.MajorRequirementRepository,
	minor repository.MinorRequirementRepository,
	profiles repository.ProfileRepository,
	cache *redis.Client,
	ttl time.Duration,
	logger zerolog.Logger,
) DegreeService {
	return &degreeService{
		snapshots: snapshots,
		semesters: semesters,
		core:      core,
		major:     major,
		minor:     minor,
		profiles:  profiles,
		cache:     cache,
		cacheTTL:  ttl,
		logger:    logger.With().Str("component", "degree_service").Logger(),
		tracer:    otel.Tracer("github.com/trackademic/trackademic-api/internal/service/degree"),
	}
}

func (s *degreeService) GetProgress(ctx context.Context, ownerID string) (dto.DegreeProgressResponse, error) {
	cacheKey := degreeCacheKey(ownerID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DegreeProgressResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("owner_id", ownerID).Msg("degree progress cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read degree progress cache")
		}
	}

	spanCtx, span := s.tracer.Start(ctx, "degree.compute", trace.WithAttributes(
		attribute.String("owner_id", ownerID),
	))
	defer span.End()

	snapshot, err := s.snapshots.Build(spanCtx, ownerID)
	if err != nil {
		span.RecordError(err)
		return dto.DegreeProgressResponse{}, err
	}

	semesters, err := s.semesters.List(spanCtx, ownerID)
	if err != nil {
		return dto.DegreeProgressResponse{}, err
	}
	core, err := s.core.List(spanCtx, ownerID)
	if err != nil {
		return dto.DegreeProgressResponse{}, err
	}
	major, err := s.major.List(spanCtx, ownerID)
	if err != nil {
		return dto.DegreeProgressResponse{}, err
	}
	minor, err := s.minor.List(spanCtx, ownerID)
	if err != nil {
		return dto.DegreeProgressResponse{}, err
	}

	response := dto.DegreeProgressResponse{
		Progress:  snapshot.DegreeProgress(),
		Semesters: dto.NewSemesterResponseSlice(semesters),
		Core:      dto.NewCoreRequirementResponseSlice(core),
		Major:     dto.NewMajorRequirementResponseSlice(major),
		MinorRows: dto.NewMinorRequirementResponseSlice(minor),
	}

	settings, err := s.profiles.GetSettings(spanCtx, ownerID)
	switch {
	case err == nil:
		if settings.MinorName != "" {
			response.Minor = &dto.MinorProgressSection{
				Name:     settings.MinorName,
				Progress: snapshot.MinorProgress(settings.MinorCreditsRequired),
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no minor configured
	default:
		return dto.DegreeProgressResponse{}, err
	}

	observability.EngineRecomputesTotal().WithLabelValues("degree").Inc()

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store degree progress cache")
			}
		}
	}

	return response, nil
}
