package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// GraphQLModule mounts the schema executor.
// POST /graphql serves queries and mutations; GET serves GraphiQL.
type GraphQLModule struct {
	Schema *graphql.Schema
}

func NewGraphQL(schema *graphql.Schema) *GraphQLModule {
	return &GraphQLModule{Schema: schema}
}

func (m *GraphQLModule) Register(rg *gin.RouterGroup) {
	h := handler.New(&handler.Config{
		Schema:   m.Schema,
		Pretty:   true,
		GraphiQL: true,
	})
	rg.POST("/graphql", gin.WrapH(h))
	rg.GET("/graphql", gin.WrapH(h))
}
