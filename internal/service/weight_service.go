package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/academics"
	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// WeightService manages the per-owner category-weight document. Weights
// are stored as entered; whether they form a valid weighted scheme is the
// grade calculator's concern.
type WeightService interface {
	Get(ctx context.Context, ownerID string) (dto.WeightsResponse, error)
	Set(ctx context.Context, ownerID string, payload dto.WeightSetRequest) (dto.WeightsResponse, error)
}

type weightService struct {
	repo      repository.WeightRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewWeightService builds a new weight service.
func NewWeightService(repo repository.WeightRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) WeightService {
	return &weightService{
		repo:      repo,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "weight_service").Logger(),
	}
}

func (s *weightService) Get(ctx context.Context, ownerID string) (dto.WeightsResponse, error) {
	doc, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.WeightsResponse{Weights: map[string]float64{}}, nil
		}

		return dto.WeightsResponse{}, err
	}

	return dto.WeightsResponse{Weights: weightsFromDoc(doc)}, nil
}

func (s *weightService) Set(ctx context.Context, ownerID string, payload dto.WeightSetRequest) (dto.WeightsResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.WeightsResponse{}, err
	}

	doc, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.WeightsResponse{}, err
		}
		doc = models.CategoryWeightDoc{OwnerID: ownerID, Weights: datatypes.JSONMap{}}
	}
	if doc.Weights == nil {
		doc.Weights = datatypes.JSONMap{}
	}

	key := academics.WeightKey(payload.ClassID, payload.Category)
	if payload.Weight == 0 {
		delete(doc.Weights, key)
	} else {
		doc.Weights[key] = payload.Weight
	}

	if err := s.repo.Upsert(ctx, &doc); err != nil {
		return dto.WeightsResponse{}, err
	}

	s.logger.Info().Str("key", key).Float64("weight", payload.Weight).Msg("category weight set")
	s.events.Announce(ctx, ownerID, "weight", dto.ChangeActionUpdated, payload.ClassID)

	return dto.WeightsResponse{Weights: weightsFromDoc(doc)}, nil
}

func weightsFromDoc(doc models.CategoryWeightDoc) map[string]float64 {
	weights := make(map[string]float64, len(doc.Weights))
	for key, value := range doc.Weights {
		if weight, ok := value.(float64); ok {
			weights[key] = weight
		}
	}

	return weights
}
