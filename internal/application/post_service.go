package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-graphql-blog/internal/auth"
	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-graphql-blog/internal/domain/repository"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create persists a post owned by the principal and records the reference
// on the author's posts set.
func (s *PostService) Create(ctx context.Context, principal *auth.Principal, title, content string) (*entity.Post, error) {
	author, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return nil, err
	}

	p := &entity.Post{
		ID:      primitive.NewObjectID(),
		Title:   title,
		Author:  author,
		Content: content,
		Date:    time.Now().UTC(),
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.Users.AddPost(ctx, author, p.ID); err != nil {
		s.Logger.WithError(err).WithField("post", p.ID.Hex()).Error("could not record post reference on author")
		return nil, err
	}
	return p, nil
}

// Update edits a post owned by the principal. Missing posts and posts owned
// by someone else are both reported as not found.
func (s *PostService) Update(ctx context.Context, principal *auth.Principal, idHex string, upd repo.PostUpdate) (*entity.Post, error) {
	id, author, err := parsePostScope(principal, idHex)
	if err != nil {
		return nil, err
	}
	p, err := s.Posts.Update(ctx, id, author, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a post owned by the principal along with the author-side
// reference.
func (s *PostService) Delete(ctx context.Context, principal *auth.Principal, idHex string) (*entity.Post, error) {
	id, author, err := parsePostScope(principal, idHex)
	if err != nil {
		return nil, err
	}
	p, err := s.Posts.Delete(ctx, id, author)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if err := s.Users.RemovePost(ctx, author, p.ID); err != nil {
		s.Logger.WithError(err).WithField("post", p.ID.Hex()).Error("could not remove post reference from author")
	}
	return p, nil
}

func (s *PostService) GetByID(ctx context.Context, idHex string) (*entity.Post, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrPostNotFound
	}
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	return s.Posts.GetAll(ctx)
}

func (s *PostService) ListByAuthor(ctx context.Context, authorHex string) ([]*entity.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorHex)
	if err != nil {
		return nil, ErrPostNotFound
	}
	return s.Posts.ListByAuthor(ctx, author)
}

func parsePostScope(principal *auth.Principal, idHex string) (id, author primitive.ObjectID, err error) {
	id, err = primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrPostNotFound
	}
	author, err = primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return id, author, nil
}
