package auth

import (
	"context"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Verify returns the public projection of the user a valid token belongs to.
	Verify(ctx context.Context, userID string) (user.PublicUser, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	// SeedAdmin creates the administrator if no user with that email exists.
	// It reports whether a user was created.
	SeedAdmin(ctx context.Context, req SeedAdminRequest) (bool, error)
}
