package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

type UserStorage struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func NewUserStorage() *UserStorage {
	return &UserStorage{byEmail: make(map[string]models.User)}
}

func (s *UserStorage) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return models.User{}, services.ErrNotFound
	}
	return u, nil
}

func (s *UserStorage) UpsertUser(_ context.Context, user models.User) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byEmail[user.Email]
	if !ok {
		user.ID = bson.NewObjectID()
		s.byEmail[user.Email] = user
		id := user.ID
		return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
	}

	before := cur
	cur.LastLoginAt = user.LastLoginAt
	if user.Name != "" {
		cur.Name = user.Name
	}
	if user.Photo != "" {
		cur.Photo = user.Photo
	}
	s.byEmail[user.Email] = cur

	res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if cur != before {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (s *UserStorage) UpdateUserStatus(_ context.Context, email, status string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if u.Status != status {
		u.Status = status
		s.byEmail[email] = u
		res.ModifiedCount = 1
	}
	return res, nil
}
