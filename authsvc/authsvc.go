package authsvc

import (
	"context"
	"errors"
)

// Identity is the verified caller carried in the request context.
type Identity struct {
	UserID    uint64
	SessionID string
}

type contextKey string

const IdentityContextKey contextKey = "Identity"

func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityContextKey).(Identity)
	return id, ok
}

var (
	ErrMissingCredentials = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedClaims    = errors.New("token carries no valid user identifier")
)
