package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"profilesvc/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindFirstByUserID(ctx context.Context, userID int64) (*model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts the profile. The user is not loaded or checked first; a
// dangling user_id is rejected by the foreign key.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

// FindFirstByUserID returns the lowest-id profile of the user.
func (r *profileRepository) FindFirstByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Take(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
