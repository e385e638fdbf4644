package internal

import (
	"context"
)

type ctxKey string

const ContextIdentityKey ctxKey = "identity"

// Identity is the resolved caller of a request: the session token plus the
// owning user's name and role. It is placed in the request context by the
// auth middleware and read by the role gate and handlers.
type Identity struct {
	Token    string
	Username string
	Role     string
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if ctx == nil {
		return nil, false
	}
	identity, ok := ctx.Value(ContextIdentityKey).(*Identity)
	return identity, ok && identity != nil
}

func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, ContextIdentityKey, identity)
}
