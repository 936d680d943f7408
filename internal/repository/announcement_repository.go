package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Maruf-rahman11/threadhub-web-server/database"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

type AnnouncementRepository struct {
	col *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{col: db.Collection(database.CollectionAnnouncements)}
}

func (r *AnnouncementRepository) InsertAnnouncement(ctx context.Context, a models.Announcement) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert announcement: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("insert announcement: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

// ListAnnouncements returns all announcements, newest first.
func (r *AnnouncementRepository) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: FieldCreatedAt, Value: -1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Announcement
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
