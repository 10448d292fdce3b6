package gql

import (
	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-graphql-blog/internal/application"
	"github.com/oksasatya/go-graphql-blog/pkg/validation"
)

// Resolver carries the dependencies shared by every field resolver.
type Resolver struct {
	Users  *application.UserService
	Posts  *application.PostService
	Logger *logrus.Logger

	validate *validator.Validate
}

func NewResolver(users *application.UserService, posts *application.PostService, logger *logrus.Logger) *Resolver {
	return &Resolver{Users: users, Posts: posts, Logger: logger, validate: validation.New()}
}

// NewSchema assembles the executable schema. Field and argument names are
// part of the wire contract and must not change.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	tokenType := graphql.NewScalar(graphql.ScalarConfig{
		Name:        "Token",
		Description: "Signed credential token returned by userLogin.",
		Serialize:   func(value interface{}) interface{} { return value },
		ParseValue:  func(value interface{}) interface{} { return value },
		ParseLiteral: func(valueAST ast.Value) interface{} {
			if s, ok := valueAST.(*ast.StringValue); ok {
				return s.Value
			}
			return nil
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: r.resolveUserID},
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: r.resolveUserUsername},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"_id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: r.resolvePostID},
			"title":   &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: r.resolvePostTitle},
			"author":  &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: r.resolvePostAuthor},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: r.resolvePostContent},
			"date":    &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: r.resolvePostDate},
		},
	})

	// posts/authorInfo form a cycle between the two types
	userType.AddFieldConfig("posts", &graphql.Field{
		Type:    graphql.NewList(postType),
		Resolve: r.resolveUserPosts,
	})
	postType.AddFieldConfig("authorInfo", &graphql.Field{
		Type:    graphql.NewNonNull(userType),
		Resolve: r.resolvePostAuthorInfo,
	})

	loginResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginResponse",
		Fields: graphql.Fields{
			"userId":   &graphql.Field{Type: graphql.ID},
			"username": &graphql.Field{Type: graphql.String},
			"token":    &graphql.Field{Type: tokenType},
		},
	})

	textType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Text",
		Fields: graphql.Fields{
			"value": &graphql.Field{Type: graphql.String},
			"type":  &graphql.Field{Type: graphql.String},
		},
	})

	highlightType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Highlight",
		Fields: graphql.Fields{
			"path":  &graphql.Field{Type: graphql.String},
			"texts": &graphql.Field{Type: graphql.NewList(textType)},
			"score": &graphql.Field{Type: graphql.Float},
		},
	})

	postResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostResult",
		Fields: graphql.Fields{
			"_id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"author":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"date":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"score":      &graphql.Field{Type: graphql.Float},
			"authorInfo": &graphql.Field{Type: graphql.NewNonNull(userType)},
			"highlights": &graphql.Field{Type: graphql.NewList(highlightType)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.resolveUsers,
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUser,
			},
			"userLogin": &graphql.Field{
				Type: loginResponseType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveUserLogin,
			},
			"userSignup": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveUserSignup,
			},
			"posts": &graphql.Field{
				Type:    graphql.NewList(postType),
				Resolve: r.resolvePosts,
			},
			"getPostById": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveGetPostByID,
			},
			"getUserPosts": &graphql.Field{
				Type: graphql.NewList(postType),
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveGetUserPosts,
			},
			"search": &graphql.Field{
				Type: graphql.NewList(postResultType),
				Args: graphql.FieldConfigArgument{
					"searchTerm": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveSearch,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveCreatePost,
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"_id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"title":   &graphql.ArgumentConfig{Type: graphql.String},
					"content": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdatePost,
			},
			"deletePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveDeletePost,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType, Mutation: mutationType})
}
