package auth

import "context"

// Principal is the authenticated identity decoded from a bearer token.
// Requests without a valid token carry no Principal at all; resolvers that
// need one check for its absence instead of consulting a boolean flag.
type Principal struct {
	UserID   string
	Username string
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the principal.
func NewContext(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext reports the principal attached to ctx, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Principal)
	return p, ok && p != nil
}
