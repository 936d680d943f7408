package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	AuthorImage string        `json:"authorImage" bson:"authorImage"`
	AuthorName  string        `json:"authorName" bson:"authorName"`
	AuthorEmail string        `json:"authorEmail" bson:"authorEmail"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Tag         string        `json:"tag" bson:"tag"`
	UpVote      int64         `json:"upVote" bson:"upVote"`
	DownVote    int64         `json:"downVote" bson:"downVote"`
	Comments    []string      `json:"comments" bson:"comments"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`

	// Votes is upVote - downVote, computed by the listing query only.
	Votes *int64 `json:"votes,omitempty" bson:"votes,omitempty"`
}

// VoteField names the counter a vote increments.
type VoteField string

const (
	UpVote   VoteField = "upVote"
	DownVote VoteField = "downVote"
)

func (f VoteField) Valid() bool {
	return f == UpVote || f == DownVote
}

// PostQuery selects one page of the post listing.
type PostQuery struct {
	Tag              string
	SortByPopularity bool
	Skip             int64
	Limit            int64
}
