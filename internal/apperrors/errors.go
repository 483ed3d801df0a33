package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a uniqueness conflict that could not be resolved by the caller's request,
// e.g. an account number that stayed taken after every generation attempt.
var ErrConflict = errors.New("resource conflict")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnavailable indicates a dependency is temporarily refusing calls (open circuit).
var ErrUnavailable = errors.New("service unavailable")

// Ledger rule failures.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrAccountInactive   = errors.New("account inactive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AppError wraps an infrastructure failure with a status-like code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsBusiness reports whether err is one of the expected, user-facing failures
// as opposed to an unexpected infrastructure error.
func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrValidation, ErrDuplicate, ErrConflict, ErrForbidden, ErrUnauthorized,
		ErrInvalidAmount, ErrInvalidOperation, ErrAccountInactive, ErrInsufficientFunds,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
