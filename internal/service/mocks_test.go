package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"profilesvc/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindFirstByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockUserCache is a mock implementation of UserCache.
type MockUserCache struct {
	mock.Mock
}

func (m *MockUserCache) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	args := m.Called(ctx, key, dst)
	return args.Bool(0)
}

func (m *MockUserCache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	m.Called(ctx, key, v, ttl)
}
