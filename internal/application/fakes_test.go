package application

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-graphql-blog/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by username

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Username]; ok {
		return repo.ErrDuplicateUsername
	}
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			u.Posts = append(u.Posts, postID)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeUserRepo) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			kept := u.Posts[:0]
			for _, id := range u.Posts {
				if id != postID {
					kept = append(kept, id)
				}
			}
			u.Posts = kept
			return nil
		}
	}
	return repo.ErrNotFound
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*entity.Post

	listByAuthorCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*entity.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, p *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) GetAll(ctx context.Context) ([]*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Post, 0, len(f.posts))
	for _, p := range f.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listByAuthorCalls++
	var out []*entity.Post
	for _, p := range f.posts {
		if p.Author == author {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id, author primitive.ObjectID, upd repo.PostUpdate) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok || p.Author != author {
		return nil, repo.ErrNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id, author primitive.ObjectID) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok || p.Author != author {
		return nil, repo.ErrNotFound
	}
	delete(f.posts, id)
	return p, nil
}

var _ repo.PostRepository = (*fakePostRepo)(nil)

func hexAll(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
