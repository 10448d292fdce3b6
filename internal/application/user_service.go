package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-graphql-blog/internal/domain/repository"
	"github.com/oksasatya/go-graphql-blog/pkg/helpers"
)

var (
	// ErrInvalidCredentials is deliberately shared by the unknown-username
	// and wrong-password paths so the two are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
)

type UserService struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, posts repo.PostRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Posts: posts, Tokens: tokens, Logger: logger}
}

// LoginResult is what a successful login returns alongside the token.
type LoginResult struct {
	UserID   string
	Username string
	Token    string
}

// Signup creates a new account with an empty posts set. A duplicate
// username yields ErrUsernameTaken, whether it is caught by the existence
// check or by the store's unique index when two signups race.
func (s *UserService) Signup(ctx context.Context, username, password string) (*entity.User, error) {
	_, err := s.Users.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.Logger.WithError(err).Error("password hashing failed")
		return nil, err
	}

	u := &entity.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: hash,
		Posts:    []primitive.ObjectID{},
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	s.Logger.WithField("username", username).Info("user created")
	return u, nil
}

// Login authenticates the credentials and issues a token. The failure
// reason is logged but never reflected in the returned error kind.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.Logger.WithField("username", username).Debug("login: unknown username")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := helpers.CheckPassword(u.Password, password)
	if err != nil {
		s.Logger.WithError(err).WithField("username", username).Error("password verification failed")
		return nil, err
	}
	if !ok {
		s.Logger.WithField("username", username).Debug("login: wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.Username, u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("username", username).Error("token issuance failed")
		return nil, err
	}
	return &LoginResult{UserID: u.ID.Hex(), Username: u.Username, Token: token}, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Users.GetAll(ctx)
}

// PostsOf resolves a user's posts. An empty reference set short-circuits
// without touching the store.
func (s *UserService) PostsOf(ctx context.Context, u *entity.User) ([]*entity.Post, error) {
	if len(u.Posts) == 0 {
		return []*entity.Post{}, nil
	}
	return s.Posts.ListByAuthor(ctx, u.ID)
}
