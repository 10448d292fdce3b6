package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/oksasatya/go-graphql-blog/internal/domain/entity"
)

func userSource(p graphql.ResolveParams) (*entity.User, bool) {
	u, ok := p.Source.(*entity.User)
	return u, ok
}

func (r *Resolver) resolveUserID(p graphql.ResolveParams) (interface{}, error) {
	u, ok := userSource(p)
	if !ok {
		return nil, errInternal()
	}
	return u.ID.Hex(), nil
}

func (r *Resolver) resolveUserUsername(p graphql.ResolveParams) (interface{}, error) {
	u, ok := userSource(p)
	if !ok {
		return nil, errInternal()
	}
	return u.Username, nil
}

func (r *Resolver) resolveUserPosts(p graphql.ResolveParams) (interface{}, error) {
	u, ok := userSource(p)
	if !ok {
		return nil, errInternal()
	}
	posts, err := r.Users.PostsOf(p.Context, u)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return posts, nil
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	users, err := r.Users.List(p.Context)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return users, nil
}

func (r *Resolver) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	username := strArg(p, "username")
	if username == "" {
		return nil, errNotFound("Cannot find user")
	}
	u, err := r.Users.GetByUsername(p.Context, username)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return u, nil
}

func (r *Resolver) resolveUserLogin(p graphql.ResolveParams) (interface{}, error) {
	args := credentialsArgs{Username: strArg(p, "username"), Password: strArg(p, "password")}
	// A validation miss on login is reported as the uniform auth failure so
	// argument shape leaks nothing about accounts.
	if err := r.checkArgs(&args); err != nil {
		return nil, errAuthFailed()
	}
	res, err := r.Users.Login(p.Context, args.Username, args.Password)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return map[string]interface{}{
		"userId":   res.UserID,
		"username": res.Username,
		"token":    res.Token,
	}, nil
}

func (r *Resolver) resolveUserSignup(p graphql.ResolveParams) (interface{}, error) {
	args := credentialsArgs{Username: strArg(p, "username"), Password: strArg(p, "password")}
	if err := r.checkArgs(&args); err != nil {
		return nil, err
	}
	u, err := r.Users.Signup(p.Context, args.Username, args.Password)
	if err != nil {
		return nil, r.toAPIError(err)
	}
	return u, nil
}
