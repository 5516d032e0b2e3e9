package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "profilesvc/internal/errors"
	"profilesvc/internal/model"
	"profilesvc/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes registration and the user read model.
type UserService interface {
	Register(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, *model.Profile, error)
}

// UserCache is the read-through store for user rows. *cache.Client
// implements it.
type UserCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration)
}

type userService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	cache    UserCache
	log      zerolog.Logger
}

// NewUserService builds a UserService. cache may be nil.
func NewUserService(users repository.UserRepository, profiles repository.ProfileRepository, cache UserCache, log zerolog.Logger) UserService {
	return &userService{
		users:    users,
		profiles: profiles,
		cache:    cache,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Register rejects a reused email or phone, then inserts the user. The
// lookup and the insert are separate statements: a concurrent duplicate
// email is caught by the unique index, a concurrent duplicate phone is not.
func (s *userService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.users.FindByEmailOrPhone(ctx, user.Email, user.Phone)
	switch {
	case err == nil:
		if existing.Email == user.Email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.ErrPhoneAlreadyExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find user by email or phone: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Warn().Str("email", user.Email).Msg("registration lost race on unique email")
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// GetUser returns the user and their first profile, or a nil profile when
// they have none.
func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, *model.Profile, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profiles.FindFirstByUserID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("find profile by user id: %w", err)
		}
		profile = nil
	}
	return user, profile, nil
}

// findUser reads through the cache. Users are never updated, so a cached row
// cannot go stale. The password is not part of the cached form.
func (s *userService) findUser(ctx context.Context, id int64) (*model.User, error) {
	var cached model.User
	if s.cache != nil && s.cache.GetJSON(ctx, s.cacheKey(id), &cached) && cached.ID == id {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	}
	return user, nil
}
