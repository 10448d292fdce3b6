package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
)

var (
	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when an insert violates the unique
	// username index.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the persistence boundary for user records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error
}
