package gql

import (
	"errors"

	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/oksasatya/go-graphql-blog/internal/application"
)

// Stable error codes surfaced in the GraphQL extensions block.
const (
	codeNotFound  = "NOT_FOUND"
	codeConflict  = "CONFLICT"
	codeAuth      = "UNAUTHENTICATED"
	codeBadInput  = "BAD_USER_INPUT"
	codeInternal  = "INTERNAL_SERVER_ERROR"
	msgAuthFailed = "Auth failed"
)

type apiError struct {
	msg     string
	code    string
	details map[string]string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if len(e.details) > 0 {
		ext["details"] = e.details
	}
	return ext
}

var _ gqlerrors.ExtendedError = (*apiError)(nil)

func errNotFound(msg string) *apiError { return &apiError{msg: msg, code: codeNotFound} }
func errConflict(msg string) *apiError { return &apiError{msg: msg, code: codeConflict} }

// errAuthFailed is uniform across unknown-username, wrong-password and
// missing/invalid token, so none of them is distinguishable externally.
func errAuthFailed() *apiError { return &apiError{msg: msgAuthFailed, code: codeAuth} }

func errBadInput(details map[string]string) *apiError {
	return &apiError{msg: "invalid arguments", code: codeBadInput, details: details}
}

// errInternal carries a generic message; the underlying cause stays in the
// logs.
func errInternal() *apiError { return &apiError{msg: "internal server error", code: codeInternal} }

// toAPIError maps service errors onto the taxonomy. Anything unclassified
// is logged and surfaced as Internal.
func (r *Resolver) toAPIError(err error) error {
	var api *apiError
	if errors.As(err, &api) {
		return api
	}
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		return errNotFound("Cannot find user")
	case errors.Is(err, application.ErrPostNotFound):
		return errNotFound("Cannot find post")
	case errors.Is(err, application.ErrUsernameTaken):
		return errConflict("username already exists")
	case errors.Is(err, application.ErrInvalidCredentials):
		return errAuthFailed()
	default:
		r.Logger.WithError(err).Error("resolver failed")
		return errInternal()
	}
}
