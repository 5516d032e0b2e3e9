package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "profilesvc/internal/errors"
	"profilesvc/internal/model"
	"profilesvc/internal/repository"
)

// ProfileService creates profiles.
type ProfileService interface {
	CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	log      zerolog.Logger
}

// NewProfileService builds a ProfileService.
func NewProfileService(profiles repository.ProfileRepository, log zerolog.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		log:      log.With().Str("component", "profile_service").Logger(),
	}
}

// CreateProfile inserts the profile without checking the user first; the
// store's foreign key decides whether user_id exists.
func (s *profileService) CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.log.Info().Int64("profile_id", profile.ID).Int64("user_id", profile.UserID).Msg("profile created")
	return profile, nil
}
