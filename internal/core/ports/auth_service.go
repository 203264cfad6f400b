package ports

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// LoginResult is returned on successful authentication. User is sanitized.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService validates credentials against the Users table.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
