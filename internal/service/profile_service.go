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

// ProfileService manages the per-owner profile and planner-settings
// documents. Reads of a missing document return defaults instead of 404;
// the documents come into existence on first write.
type ProfileService interface {
	Get(ctx context.Context, ownerID string) (dto.ProfileResponse, error)
	Upsert(ctx context.Context, ownerID string, payload dto.ProfileUpsertRequest) (dto.ProfileResponse, error)
	GetSettings(ctx context.Context, ownerID string) (dto.DegreeSettingsResponse, error)
	UpsertSettings(ctx context.Context, ownerID string, payload dto.DegreeSettingsUpsertRequest) (dto.DegreeSettingsResponse, error)
}

type profileService struct {
	repo      repository.ProfileRepository
	events    ChangeBroadcaster
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewProfileService builds a new profile service.
func NewProfileService(repo repository.ProfileRepository, events ChangeBroadcaster, validate *validator.Validate, logger zerolog.Logger) ProfileService {
	return &profileService{
		repo:      repo,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "profile_service").Logger(),
	}
}

func (s *profileService) Get(ctx context.Context, ownerID string) (dto.ProfileResponse, error) {
	profile, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NewProfileResponse(models.UserProfile{
				OwnerID:                 ownerID,
				DegreeCreditRequirement: 120,
			}), nil
		}

		return dto.ProfileResponse{}, err
	}

	return dto.NewProfileResponse(profile), nil
}

func (s *profileService) Upsert(ctx context.Context, ownerID string, payload dto.ProfileUpsertRequest) (dto.ProfileResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ProfileResponse{}, err
	}

	profile, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, err
		}
		profile = models.UserProfile{
			OwnerID:                 ownerID,
			DegreeCreditRequirement: 120,
		}
	}

	if payload.DisplayName != nil {
		profile.DisplayName = *payload.DisplayName
	}
	if payload.Major != nil {
		profile.Major = *payload.Major
	}
	if payload.SchoolYear != nil {
		profile.SchoolYear = *payload.SchoolYear
	}
	if payload.Plans != nil {
		profile.Plans = *payload.Plans
	}
	if payload.LinkedinURL != nil {
		profile.LinkedinURL = *payload.LinkedinURL
	}
	if payload.GithubURL != nil {
		profile.GithubURL = *payload.GithubURL
	}
	if payload.HandshakeURL != nil {
		profile.HandshakeURL = *payload.HandshakeURL
	}
	if payload.PortfolioURL != nil {
		profile.PortfolioURL = *payload.PortfolioURL
	}
	if payload.CustomLinks != nil {
		links, err := json.Marshal(payload.CustomLinks)
		if err != nil {
			return dto.ProfileResponse{}, err
		}
		profile.CustomLinks = links
	}
	if payload.DegreeCreditRequirement != nil {
		profile.DegreeCreditRequirement = *payload.DegreeCreditRequirement
	}
	if payload.CurrentGPA != nil {
		profile.CurrentGPA = payload.CurrentGPA
	}
	if payload.CompletedCreditHours != nil {
		profile.CompletedCreditHours = *payload.CompletedCreditHours
	}

	if err := s.repo.Upsert(ctx, &profile); err != nil {
		return dto.ProfileResponse{}, err
	}

	s.logger.Info().Str("owner_id", ownerID).Msg("profile saved")
	s.events.Announce(ctx, ownerID, "profile", dto.ChangeActionUpdated, profile.ID)

	return dto.NewProfileResponse(profile), nil
}

func (s *profileService) GetSettings(ctx context.Context, ownerID string) (dto.DegreeSettingsResponse, error) {
	settings, err := s.repo.GetSettings(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NewDegreeSettingsResponse(models.DegreeSettings{
				OwnerID:              ownerID,
				MinorCreditsRequired: 18,
			}), nil
		}

		return dto.DegreeSettingsResponse{}, err
	}

	return dto.NewDegreeSettingsResponse(settings), nil
}

func (s *profileService) UpsertSettings(ctx context.Context, ownerID string, payload dto.DegreeSettingsUpsertRequest) (dto.DegreeSettingsResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DegreeSettingsResponse{}, err
	}

	settings, err := s.repo.GetSettings(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DegreeSettingsResponse{}, err
		}
		settings = models.DegreeSettings{
			OwnerID:              ownerID,
			MinorCreditsRequired: 18,
		}
	}

	if payload.MinorName != nil {
		settings.MinorName = *payload.MinorName
	}
	if payload.MinorCreditsRequired != nil {
		settings.MinorCreditsRequired = *payload.MinorCreditsRequired
	}
	if payload.CoreCategories != nil {
		categories, err := json.Marshal(payload.CoreCategories)
		if err != nil {
			return dto.DegreeSettingsResponse{}, err
		}
		settings.CoreCategories = categories
	}

	if err := s.repo.UpsertSettings(ctx, &settings); err != nil {
		return dto.DegreeSettingsResponse{}, err
	}

	s.events.Announce(ctx, ownerID, "degree_settings", dto.ChangeActionUpdated, settings.ID)

	return dto.NewDegreeSettingsResponse(settings), nil
}
