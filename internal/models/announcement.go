package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Announcement struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Message   string        `json:"message" bson:"message"`
	CreatedBy string        `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
