package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Maruf-rahman11/threadhub-web-server/database"
)

// PostIndexes back the listing filter/sort and the author lookup.
func PostIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "tag", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("tag_created_at"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "authorEmail", Value: 1}},
			Options: options.Index().SetName("author_email"),
		},
	}
}

func UserIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	}
}

func AnnouncementIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	sets := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{database.CollectionPosts, PostIndexes()},
		{database.CollectionUsers, UserIndexes()},
		{database.CollectionAnnouncements, AnnouncementIndexes()},
	}
	for _, s := range sets {
		if _, err := db.Collection(s.coll).Indexes().CreateMany(ctx, s.models); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", s.coll, err)
		}
	}
	return nil
}
