package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogFailure logs business rule failures at debug level and everything else as an error.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.IsBusiness(err) {
		s.LogDebug(ctx, msg, append([]any{slog.String("reason", err.Error())}, keyvals...)...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// RollbackQuietly rolls session back and logs a failure. It is meant to be deferred
// right after Begin; after a successful Commit it does nothing.
func (s *BaseService) RollbackQuietly(ctx context.Context, session portsrepo.Session) {
	if err := session.Rollback(ctx); err != nil {
		s.LogError(ctx, err, "Failed to roll back session")
	}
}

// resolveOptional resolves identity, mapping a missing principal to nil.
func resolveOptional(ctx context.Context, resolver portsrepo.PrincipalResolver, identity string) (*domain.Principal, error) {
	p, err := resolver.ResolvePrincipal(ctx, identity)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
