package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

type AnnouncementStorage struct {
	mu    sync.RWMutex
	items []models.Announcement
}

func NewAnnouncementStorage() *AnnouncementStorage {
	return &AnnouncementStorage{}
}

func (s *AnnouncementStorage) InsertAnnouncement(_ context.Context, a models.Announcement) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	s.items = append(s.items, a)
	return a.ID, nil
}

func (s *AnnouncementStorage) ListAnnouncements(_ context.Context) ([]models.Announcement, error) {
	s.mu.RLock()
	out := append([]models.Announcement(nil), s.items...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
