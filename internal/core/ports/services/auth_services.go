package services

import (
	"context"

	"github.com/SscSPs/corebank/internal/dto"
)

// AuthSvc issues access tokens.
type AuthSvc interface {
	// Login checks credentials and returns a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// SeedAdmin creates the ADMIN user when it does not exist yet.
	SeedAdmin(ctx context.Context, email string, password string) error
}
