package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

// ===== MongoDB stage/keyword constants =====
const (
	StageMatch     = "$match"
	StageAddFields = "$addFields"
	StageSort      = "$sort"
	StageSkip      = "$skip"
	StageLimit     = "$limit"

	OpSubtract = "$subtract"
	OpInc      = "$inc"
	OpPush     = "$push"
	OpSet      = "$set"
	OpSetOnIns = "$setOnInsert"
)

// post document fields
const (
	FieldID          = "_id"
	FieldTag         = "tag"
	FieldUpVote      = "upVote"
	FieldDownVote    = "downVote"
	FieldVotes       = "votes"
	FieldComments    = "comments"
	FieldCreatedAt   = "created_at"
	FieldAuthorEmail = "authorEmail"
)

// TagFilter matches every post when tag is empty.
func TagFilter(tag string) bson.D {
	if tag == "" {
		return bson.D{}
	}
	return bson.D{{Key: FieldTag, Value: tag}}
}

// BuildPostListPipeline returns match -> addFields(votes) -> sort -> skip -> limit.
func BuildPostListPipeline(q models.PostQuery) mongo.Pipeline {
	sort := bson.D{{Key: FieldCreatedAt, Value: -1}}
	if q.SortByPopularity {
		sort = bson.D{
			{Key: FieldVotes, Value: -1},
			{Key: FieldCreatedAt, Value: -1},
		}
	}

	skip := q.Skip
	if skip < 0 {
		skip = 0
	}

	return mongo.Pipeline{
		{{Key: StageMatch, Value: TagFilter(q.Tag)}},
		{{Key: StageAddFields, Value: bson.D{
			{Key: FieldVotes, Value: bson.D{
				{Key: OpSubtract, Value: bson.A{"$" + FieldUpVote, "$" + FieldDownVote}},
			}},
		}}},
		{{Key: StageSort, Value: sort}},
		{{Key: StageSkip, Value: skip}},
		{{Key: StageLimit, Value: q.Limit}},
	}
}
