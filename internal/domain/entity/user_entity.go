package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash; it must never be projected outward,
// which the GraphQL schema enforces by having no field for it.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Username string               `bson:"username"`
	Password string               `bson:"password"`
	Posts    []primitive.ObjectID `bson:"posts"`
}
