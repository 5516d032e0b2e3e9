package dto

import "profilesvc/internal/model"

// ProfileCreateRequest represents a profile creation request.
type ProfileCreateRequest struct {
	ProfilePicture *string `json:"profile_picture" validate:"required"`
	UserID         *int64  `json:"user_id" validate:"required"`
}

// ProfileCreateResponse echoes the profile with the generated id.
type ProfileCreateResponse struct {
	ID             int64   `json:"id"`
	ProfilePicture *string `json:"profile_picture"`
	UserID         int64   `json:"user_id"`
}

// ToProfile maps a validated request onto the stored entity.
func (r *ProfileCreateRequest) ToProfile() *model.Profile {
	picture := deref(r.ProfilePicture)
	return &model.Profile{
		ProfilePicture: &picture,
		UserID:         deref(r.UserID),
	}
}

// NewProfileCreateResponse shapes a freshly inserted profile.
func NewProfileCreateResponse(p *model.Profile) ProfileCreateResponse {
	return ProfileCreateResponse{
		ID:             p.ID,
		ProfilePicture: p.ProfilePicture,
		UserID:         p.UserID,
	}
}
