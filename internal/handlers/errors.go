package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps an error returned by a service to an HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidOperation),
		errors.Is(err, apperrors.ErrAccountInactive),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Rule violations carry their own
// message; infrastructure failures are logged and answered with fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)

	var violation *domain.RuleViolation
	switch {
	case errors.As(err, &violation):
		logger.Warn("Request rejected", slog.String("reason", violation.Message), slog.Int("status", status))
		c.JSON(status, ErrorResponse{Error: violation.Message})
	case status == http.StatusServiceUnavailable:
		logger.Warn("Dependency unavailable", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: "Service temporarily unavailable"})
	case status == http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
	default:
		logger.Warn("Request rejected", slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}
