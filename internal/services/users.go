package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

//go:generate mockgen -source=users.go -destination=./user_storage_mock.go -package=services
type UserStorage interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpsertUser(ctx context.Context, user models.User) (models.UpdateResult, error)
	UpdateUserStatus(ctx context.Context, email, status string) (models.UpdateResult, error)
}

type UserService struct {
	userStorage UserStorage
	now         func() time.Time
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{userStorage: userStorage, now: time.Now}
}

func (s *UserService) GetUser(ctx context.Context, email string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	return s.userStorage.FindUserByEmail(ctx, email)
}

// UpsertUser records a sign-in: the user is created with default role and
// status on first sight, profile fields are refreshed afterwards.
func (s *UserService) UpsertUser(ctx context.Context, req UpsertUserRequest) (models.UpdateResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: a valid email is required", ErrInvalidRequest)
	}
	now := s.now().UTC()
	return s.userStorage.UpsertUser(ctx, models.User{
		Email:       req.Email,
		Name:        strings.TrimSpace(req.Name),
		Photo:       strings.TrimSpace(req.Photo),
		Role:        models.DefaultUserRole,
		Status:      models.DefaultUserStatus,
		CreatedAt:   now,
		LastLoginAt: now,
	})
}

func (s *UserService) UpdateStatus(ctx context.Context, req UpdateUserStatusRequest) (models.UpdateResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Status = strings.TrimSpace(req.Status)
	if err := validate.Struct(req); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: status is required", ErrInvalidRequest)
	}
	res, err := s.userStorage.UpdateUserStatus(ctx, req.Email, req.Status)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return models.UpdateResult{}, ErrNotFound
	}
	return res, nil
}
