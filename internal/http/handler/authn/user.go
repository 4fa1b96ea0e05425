package authn

import (
	"context"

	httpCtx "github.com/bornholm/foyer/internal/http/context"
	"github.com/bornholm/foyer/internal/store"
)

// User is the session identity of a signed-in visitor.
type User = store.User

// ContextUser returns the signed-in user, or nil.
func ContextUser(ctx context.Context) *User {
	return httpCtx.User(ctx)
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return httpCtx.SetUser(ctx, user)
}
