package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// PrincipalResolver is the lookup RequireRole needs. It is satisfied by the
// user repository and by its circuit-breaker wrapper.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error)
}

// RequireRole resolves the caller's principal and aborts unless it holds one of roles.
// Must run after AuthMiddleware.
func RequireRole(resolver PrincipalResolver, roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		principal, err := resolver.ResolvePrincipal(c.Request.Context(), identity)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		case errors.Is(err, apperrors.ErrUnavailable):
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		case err != nil:
			logger.Error("Failed to resolve principal", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !slices.Contains(roles, principal.Role) {
			logger.Warn("Role not allowed", slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), principalKey, principal))
		c.Next()
	}
}
