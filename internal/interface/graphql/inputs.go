package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/oksasatya/go-graphql-blog/pkg/validation"
)

// Argument structs validated before any resolver work happens. Field names
// in error details follow the json tag, matching the wire argument names.
// No minimum lengths: the schema's non-null markers enforce presence, and
// the ceilings guard bcrypt's 72-byte input limit and runaway documents.

type credentialsArgs struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type createPostArgs struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

func (r *Resolver) checkArgs(v interface{}) error {
	if err := r.validate.Struct(v); err != nil {
		return errBadInput(validation.ToDetails(err))
	}
	return nil
}

// strArg reads an optional string argument, tolerating absence and nulls.
func strArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

// optStrArg reads a nullable string argument as a pointer, distinguishing
// "absent" from "empty".
func optStrArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}
