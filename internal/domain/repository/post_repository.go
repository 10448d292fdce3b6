package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
)

// PostUpdate carries the mutable post fields; nil means "leave unchanged".
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostRepository defines the persistence boundary for posts. Update and
// Delete are scoped by author so ownership is enforced by the store query
// itself rather than a preceding read.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	GetAll(ctx context.Context) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]*entity.Post, error)
	Update(ctx context.Context, id, author primitive.ObjectID, upd PostUpdate) (*entity.Post, error)
	Delete(ctx context.Context, id, author primitive.ObjectID) (*entity.Post, error)
}
