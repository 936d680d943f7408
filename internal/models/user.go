package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultUserRole   = "user"
	DefaultUserStatus = "bronze"
)

type User struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string        `bson:"email" json:"email"`
	Name        string        `bson:"name,omitempty" json:"name,omitempty"`
	Photo       string        `bson:"photo,omitempty" json:"photo,omitempty"`
	Role        string        `bson:"role,omitempty" json:"role,omitempty"`
	Status      string        `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt   time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
	LastLoginAt time.Time     `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}

// UpdateResult mirrors the store's write acknowledgement.
type UpdateResult struct {
	Acknowledged  bool           `json:"acknowledged"`
	MatchedCount  int64          `json:"matchedCount"`
	ModifiedCount int64          `json:"modifiedCount"`
	UpsertedCount int64          `json:"upsertedCount"`
	UpsertedID    *bson.ObjectID `json:"upsertedId,omitempty"`
}
