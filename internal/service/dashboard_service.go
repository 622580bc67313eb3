package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/observability"
	"github.com/trackademic/trackademic-api/internal/repository"
)

const upcomingWindow = 7 * 24 * time.Hour

// DashboardService produces the home-dashboard aggregate.
type DashboardService interface {
	GetDashboard(ctx context.Context, ownerID string) (dto.DashboardResponse, error)
}

type dashboardService struct {
	snapshots SnapshotBuilder
	classes   repository.ClassRepository
	work      repository.AssignmentRepository
	todos     repository.TodoRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewDashboardService builds the home-dashboard aggregator.
func NewDashboardService(snapshots SnapshotBuilder, classes repository.ClassRepository, work repository.AssignmentRepository, todos repository.TodoRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		snapshots: snapshots,
		classes:   classes,
		work:      work,
		todos:     todos,
		cache:     cache,
		cacheTTL:  ttl,
		logger:    logger.With().Str("component", "dashboard_service").Logger(),
		tracer:    otel.Tracer("github.com/trackademic/trackademic-api/internal/service/dashboard"),
		now:       time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, ownerID string) (dto.DashboardResponse, error) {
	cacheKey := dashboardCacheKey(ownerID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("owner_id", ownerID).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	spanCtx, span := s.tracer.Start(ctx, "dashboard.compute", trace.WithAttributes(
		attribute.String("owner_id", ownerID),
	))
	defer span.End()

	snapshot, err := s.snapshots.Build(spanCtx, ownerID)
	if err != nil {
		span.RecordError(err)
		return dto.DashboardResponse{}, err
	}

	active, err := s.classes.ListActive(spanCtx, ownerID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	notCompleted := false
	pendingWork, err := s.work.ListWithFilter(spanCtx, ownerID, repository.AssignmentFilter{Completed: &notCompleted})
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	pendingTodos, err := s.todos.List(spanCtx, ownerID, false)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	now := s.now()
	weekday := now.Weekday().String()
	horizon := now.Add(upcomingWindow)

	response := dto.DashboardResponse{
		TodayClasses:   make([]dto.ClassResponse, 0),
		UpcomingWork:   make([]dto.AssignmentResponse, 0),
		OverdueWork:    make([]dto.AssignmentResponse, 0),
		PendingTodos:   dto.NewTodoResponseSlice(pendingTodos),
		GPA:            snapshot.DashboardGPA(),
		DegreeProgress: snapshot.DashboardProgress(),
		ActiveClasses:  len(active),
	}

	for _, class := range active {
		if classMeetsOn(class, weekday) {
			response.TodayClasses = append(response.TodayClasses, dto.NewClassResponse(class))
		}
	}

	for _, assignment := range pendingWork {
		switch {
		case assignment.IsPastDue(now):
			response.OverdueWork = append(response.OverdueWork, dto.NewAssignmentResponse(assignment))
		case assignment.DueDate.Before(horizon):
			response.UpcomingWork = append(response.UpcomingWork, dto.NewAssignmentResponse(assignment))
		}
	}

	observability.EngineRecomputesTotal().WithLabelValues("dashboard").Inc()

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func classMeetsOn(class models.Class, weekday string) bool {
	if len(class.Days) == 0 {
		return false
	}

	var days []string
	if err := json.Unmarshal(class.Days, &days); err != nil {
		return false
	}
	for _, day := range days {
		if day == weekday {
			return true
		}
	}

	return false
}
