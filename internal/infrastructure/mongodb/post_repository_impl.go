package mongodb

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
	"github.com/oksasatya/go-graphql-blog/internal/domain/repository"
)

const postsCollection = "posts"

type PostRepository struct {
	conn   *Conn
	logger *logrus.Logger
}

func NewPostRepository(conn *Conn, logger *logrus.Logger) *PostRepository {
	return &PostRepository{conn: conn, logger: logger}
}

func (r *PostRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(postsCollection), nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err = coll.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{}
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) GetAll(ctx context.Context) ([]*entity.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]*entity.Post, error) {
	return r.find(ctx, bson.M{"author": author})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]*entity.Post, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var posts []*entity.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update modifies a post only when it is owned by author; a miss on either
// id or owner reports ErrNotFound, so non-owners learn nothing about the
// post's existence.
func (r *PostRepository) Update(ctx context.Context, id, author primitive.ObjectID, upd repository.PostUpdate) (*entity.Post, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}

	filter := bson.M{"_id": id, "author": author}
	p := &entity.Post{}
	if len(set) == 0 {
		err = coll.FindOne(ctx, filter).Decode(p)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(p)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id, author primitive.ObjectID) (*entity.Post, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{}
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": id, "author": author}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
