package mongodb

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
	"github.com/oksasatya/go-graphql-blog/internal/domain/repository"
)

const usersCollection = "users"

type UserRepository struct {
	conn   *Conn
	logger *logrus.Logger

	indexOnce sync.Once
}

func NewUserRepository(conn *Conn, logger *logrus.Logger) *UserRepository {
	return &UserRepository{conn: conn, logger: logger}
}

func (r *UserRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	// Uniqueness of usernames is enforced by the store itself so that a
	// concurrent duplicate signup is rejected on write, not only by the
	// preceding existence check.
	r.indexOnce.Do(func() {
		if err := r.ensureIndexes(ctx, db); err != nil {
			r.logger.WithError(err).Warn("could not ensure username index; duplicate signups fall back to the pre-insert check")
		}
	})
	return db.Collection(usersCollection), nil
}

func (r *UserRepository) ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Posts == nil {
		u.Posts = []primitive.ObjectID{}
	}
	if _, err := coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	u := &entity.User{}
	if err := coll.FindOne(ctx, filter).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []*entity.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updatePosts(ctx, userID, bson.M{"$push": bson.M{"posts": postID}})
}

func (r *UserRepository) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updatePosts(ctx, userID, bson.M{"$pull": bson.M{"posts": postID}})
}

func (r *UserRepository) updatePosts(ctx context.Context, userID primitive.ObjectID, update bson.M) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
