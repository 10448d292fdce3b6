package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-graphql-blog/internal/auth"
	repo "github.com/oksasatya/go-graphql-blog/internal/domain/repository"
)

func strptr(s string) *string { return &s }

func signupPrincipal(t *testing.T, us *UserService, username string) *auth.Principal {
	t.Helper()
	u, err := us.Signup(context.Background(), username, "pw")
	require.NoError(t, err)
	return &auth.Principal{UserID: u.ID.Hex(), Username: u.Username}
}

func TestPostService_Create_RecordsAuthorReference(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	posts := newFakePostRepo()
	us := newUserService(users, posts)
	ps := NewPostService(posts, users, testLogger())
	ctx := context.Background()

	principal := signupPrincipal(t, us, "alice")

	p, err := ps.Create(ctx, principal, "hello", "first post")
	require.NoError(t, err)
	require.Equal(t, principal.UserID, p.Author.Hex())
	require.False(t, p.Date.IsZero())

	u, err := us.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []string{p.ID.Hex()}, hexAll(u.Posts))
}

func TestPostService_Update_OwnerOnly(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	posts := newFakePostRepo()
	us := newUserService(users, posts)
	ps := NewPostService(posts, users, testLogger())
	ctx := context.Background()

	alice := signupPrincipal(t, us, "alice")
	mallory := signupPrincipal(t, us, "mallory")

	p, err := ps.Create(ctx, alice, "hello", "first post")
	require.NoError(t, err)

	// a non-owner sees the same error as for a missing post
	_, err = ps.Update(ctx, mallory, p.ID.Hex(), repo.PostUpdate{Title: strptr("stolen")})
	require.ErrorIs(t, err, ErrPostNotFound)

	got, err := ps.Update(ctx, alice, p.ID.Hex(), repo.PostUpdate{Title: strptr("renamed")})
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Title)
	require.Equal(t, "first post", got.Content)
}

func TestPostService_Delete_RemovesAuthorReference(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	posts := newFakePostRepo()
	us := newUserService(users, posts)
	ps := NewPostService(posts, users, testLogger())
	ctx := context.Background()

	alice := signupPrincipal(t, us, "alice")
	p, err := ps.Create(ctx, alice, "hello", "first post")
	require.NoError(t, err)

	got, err := ps.Delete(ctx, alice, p.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = ps.GetByID(ctx, p.ID.Hex())
	require.ErrorIs(t, err, ErrPostNotFound)

	u, err := us.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, u.Posts)
}

func TestPostService_GetByID_BadID(t *testing.T) {
	t.Parallel()

	ps := NewPostService(newFakePostRepo(), newFakeUserRepo(), testLogger())

	_, err := ps.GetByID(context.Background(), "not-an-object-id")
	require.ErrorIs(t, err, ErrPostNotFound)
}
