package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Maruf-rahman11/threadhub-web-server/database"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(database.CollectionUsers)}
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, services.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UpsertUser creates the user on first sign-in; later calls only refresh the
// profile fields and last_login_at.
func (r *UserRepository) UpsertUser(ctx context.Context, user models.User) (models.UpdateResult, error) {
	set := bson.D{{Key: "last_login_at", Value: user.LastLoginAt}}
	if user.Name != "" {
		set = append(set, bson.E{Key: "name", Value: user.Name})
	}
	if user.Photo != "" {
		set = append(set, bson.E{Key: "photo", Value: user.Photo})
	}
	update := bson.D{
		{Key: OpSet, Value: set},
		{Key: OpSetOnIns, Value: bson.D{
			{Key: "role", Value: user.Role},
			{Key: "status", Value: user.Status},
			{Key: "created_at", Value: user.CreatedAt},
		}},
	}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "email", Value: user.Email}}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return models.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

func (r *UserRepository) UpdateUserStatus(ctx context.Context, email, status string) (models.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: OpSet, Value: bson.D{{Key: "status", Value: status}}}},
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

func toUpdateResult(res *mongo.UpdateResult) models.UpdateResult {
	out := models.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(bson.ObjectID); ok {
		out.UpsertedID = &oid
	}
	return out
}
