// Package dto declares the request and response payloads of the HTTP API.
//
// Request fields are pointers so that "required" means present with the
// right JSON type; an empty string is a valid value.
package dto

import "profilesvc/internal/model"

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FirstName *string `json:"first_name" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	Password  *string `json:"password" validate:"required"`
	Phone     *string `json:"phone" validate:"required"`
}

// RegisterResponse echoes the registration with the generated id.
type RegisterResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// UserView is a user joined with their first profile.
type UserView struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
}

// ToUser maps a validated request onto the stored entity.
func (r *RegisterRequest) ToUser() *model.User {
	return &model.User{
		FullName: deref(r.FirstName),
		Email:    deref(r.Email),
		Password: deref(r.Password),
		Phone:    deref(r.Phone),
	}
}

// NewRegisterResponse shapes a freshly inserted user.
func NewRegisterResponse(u *model.User) RegisterResponse {
	return RegisterResponse{
		ID:        u.ID,
		FirstName: u.FullName,
		Email:     u.Email,
		Password:  u.Password,
		Phone:     u.Phone,
	}
}

// NewUserView builds the read model. A nil profile yields a null picture.
func NewUserView(u *model.User, p *model.Profile) UserView {
	view := UserView{
		ID:        u.ID,
		FirstName: u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	if p != nil {
		view.ProfilePicture = p.ProfilePicture
	}
	return view
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
