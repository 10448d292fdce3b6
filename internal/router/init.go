package router

import (
	"context"
	"time"

	"github.com/oksasatya/go-graphql-blog/internal/application"
	"github.com/oksasatya/go-graphql-blog/internal/container"
	"github.com/oksasatya/go-graphql-blog/internal/infrastructure/mongodb"
	gql "github.com/oksasatya/go-graphql-blog/internal/interface/graphql"
	graphqlmodule "github.com/oksasatya/go-graphql-blog/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()
	conn := container.GetMongo()

	users := mongodb.NewUserRepository(conn, logger)
	posts := mongodb.NewPostRepository(conn, logger)

	userService := application.NewUserService(users, posts, container.GetTokens(), logger)
	postService := application.NewPostService(posts, users, logger)

	resolver := gql.NewResolver(userService, postService, logger)
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		logger.WithError(err).Fatal("could not build graphql schema")
	}

	// Best-effort store warmup; a down database only defers connection (and
	// index creation) to the first request that needs it.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := conn.Database(ctx); err != nil {
		logger.WithError(err).Error("database connection failed, will retry on first request")
	}

	r.Add(graphqlmodule.NewGraphQL(&schema))
}
