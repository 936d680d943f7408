package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

type AnnouncementStorage interface {
	InsertAnnouncement(ctx context.Context, a models.Announcement) (bson.ObjectID, error)
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
}

type AnnouncementService struct {
	storage AnnouncementStorage
	now     func() time.Time
}

func NewAnnouncementService(storage AnnouncementStorage) *AnnouncementService {
	return &AnnouncementService{storage: storage, now: time.Now}
}

// List returns every announcement, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.storage.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Announcement{}
	}
	return items, nil
}

func (s *AnnouncementService) Create(ctx context.Context, req CreateAnnouncementRequest) (bson.ObjectID, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Message = strings.TrimSpace(req.Message)
	req.CreatedBy = strings.TrimSpace(req.CreatedBy)
	if err := validate.Struct(req); err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: All fields are required", ErrInvalidRequest)
	}
	return s.storage.InsertAnnouncement(ctx, models.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: req.CreatedBy,
		CreatedAt: s.now().UTC(),
	})
}
