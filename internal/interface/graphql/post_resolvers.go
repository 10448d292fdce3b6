package gql

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/oksasatya/go-graphql-blog/internal/auth"
	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-graphql-blog/internal/domain/repository"
)

func postSource(p graphql.ResolveParams) (*entity.Post, bool) {
	post, ok := p.Source.(*entity.Post)
	return post, ok
}

// principal is the capability check performed at the top of every resolver
// that mutates data. An absent principal yields the uniform auth failure.
func (r *Resolver) principal(p graphql.ResolveParams) (*auth.Principal, error) {
	pr, ok := auth.FromContext(p.Context)
	if !ok {
		return nil, errAuthFailed()
	}
	return pr, nil
}

func (r *Resolver) resolvePostID(p graphql.ResolveParams) (interface{}, error) {
	post, ok := postSource(p)
	if !ok {
		return nil, errInternal()
	}
	return post.ID.Hex(), nil
}

func (r *Resolver) resolvePostTitle(p graphql.ResolveParams) (interface{}, error) {
	post, ok := postSource(p)
	if !ok {
		return nil, errInternal()
	}
	return post.Title, nil
}

func (r *Resolver) resolvePostAuthor(p graphql.ResolveParams) (interface{}, error) {
	post, ok := postSource(p)
	if !ok {
		return nil, errInternal()
	}
	return post.Author.Hex(), nil
}

func (r *Resolver) resolvePostContent(p graphql.ResolveParams) (interface{}, error) {
	post, ok := postSource(p)
	if !ok {
		return nil, errInternal()
	}
	return post.Content, nil
}

func (r *Resolver) resolvePostDate(p graphql.ResolveParams) (interface{}, error) {
	post, ok := postSource(p)
	if !ok {
		return nil, errInternal()
	}
	return post.Date.UTC().Format(time.RFC3339), nil
}

func (r *Resolver) resolvePostAuthorInfo(p graphql.ResolveParams) (interface{}, error) {
	post, ok := postSource(p)
	if !ok {
		return nil, errInternal()
	}
	u, err := r.Users.GetByID(p.Context, post.Author)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return u, nil
}

func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	posts, err := r.Posts.List(p.Context)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return posts, nil
}

func (r *Resolver) resolveGetPostByID(p graphql.ResolveParams) (interface{}, error) {
	post, err := r.Posts.GetByID(p.Context, strArg(p, "_id"))
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return post, nil
}

func (r *Resolver) resolveGetUserPosts(p graphql.ResolveParams) (interface{}, error) {
	posts, err := r.Posts.ListByAuthor(p.Context, strArg(p, "_id"))
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return posts, nil
}

// Full-text search is declared in the schema but served elsewhere.
func (r *Resolver) resolveSearch(p graphql.ResolveParams) (interface{}, error) {
	return nil, &apiError{msg: "search is not implemented", code: codeInternal}
}

func (r *Resolver) resolveCreatePost(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.principal(p)
	if err != nil {
		return nil, err
	}
	args := createPostArgs{Title: strArg(p, "title"), Content: strArg(p, "content")}
	if err := r.checkArgs(&args); err != nil {
		return nil, err
	}
	post, err := r.Posts.Create(p.Context, principal, args.Title, args.Content)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return post, nil
}

func (r *Resolver) resolveUpdatePost(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.principal(p)
	if err != nil {
		return nil, err
	}
	upd := repo.PostUpdate{Title: optStrArg(p, "title"), Content: optStrArg(p, "content")}
	post, err := r.Posts.Update(p.Context, principal, strArg(p, "_id"), upd)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return post, nil
}

func (r *Resolver) resolveDeletePost(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.principal(p)
	if err != nil {
		return nil, err
	}
	post, err := r.Posts.Delete(p.Context, principal, strArg(p, "_id"))
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return post, nil
}
