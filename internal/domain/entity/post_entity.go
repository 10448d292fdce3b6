package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post belongs to exactly one User via Author.
type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Author  primitive.ObjectID `bson:"author"`
	Content string             `bson:"content"`
	Date    time.Time          `bson:"date"`
}
