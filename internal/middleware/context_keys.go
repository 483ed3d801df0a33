package middleware

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	identityKey  = contextKey("identity")
	principalKey = contextKey("principal")
)

// WithIdentity returns a copy of ctx carrying the authenticated identity (the user email).
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the authenticated identity set by AuthMiddleware.
// It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (string, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(string)
	if !ok || identity == "" {
		return "", false
	}
	return identity, true
}

// GetPrincipalFromContext retrieves the principal resolved by RequireRole.
func GetPrincipalFromContext(c *gin.Context) (*domain.Principal, bool) {
	p, ok := c.Request.Context().Value(principalKey).(*domain.Principal)
	return p, ok && p != nil
}
