package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Maruf-rahman11/threadhub-web-server/database"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(database.CollectionPosts)}
}

func (r *PostRepository) InsertPost(ctx context.Context, post models.Post) (bson.ObjectID, error) {
	post.Votes = nil
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert post: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("insert post: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *PostRepository) FindPosts(ctx context.Context, q models.PostQuery) ([]models.Post, error) {
	cur, err := r.col.Aggregate(ctx, BuildPostListPipeline(q), options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) CountPosts(ctx context.Context, tag string) (int64, error) {
	return r.col.CountDocuments(ctx, TagFilter(tag))
}

func (r *PostRepository) FindPostByID(ctx context.Context, id bson.ObjectID) (models.Post, error) {
	var p models.Post
	err := r.col.FindOne(ctx, bson.D{{Key: FieldID, Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, services.ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return p, nil
}

func (r *PostRepository) FindPostsByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: FieldCreatedAt, Value: -1}})
	cur, err := r.col.Find(ctx, bson.D{{Key: FieldAuthorEmail, Value: email}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) IncrementVote(ctx context.Context, id bson.ObjectID, field models.VoteField) (models.Post, error) {
	if !field.Valid() {
		return models.Post{}, fmt.Errorf("%w: unknown vote %q", services.ErrInvalidRequest, field)
	}
	return r.updateAndReturn(ctx, id, bson.D{{Key: OpInc, Value: bson.D{{Key: string(field), Value: 1}}}})
}

func (r *PostRepository) PushComment(ctx context.Context, id bson.ObjectID, comment string) (models.Post, error) {
	return r.updateAndReturn(ctx, id, bson.D{{Key: OpPush, Value: bson.D{{Key: FieldComments, Value: comment}}}})
}

// updateAndReturn applies update and returns the document after it.
func (r *PostRepository) updateAndReturn(ctx context.Context, id bson.ObjectID, update bson.D) (models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Post
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: FieldID, Value: id}}, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, services.ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return p, nil
}
