package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"profilesvc/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and writes the generated id back into it.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailOrPhone returns a user sharing the email or the phone. When
// different rows match each, the email match is returned.
func (r *userRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", email, phone).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN email = ? THEN 0 ELSE 1 END, id",
			Vars:               []interface{}{email},
			WithoutParentheses: true,
		}}).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
