package ports

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// UserInput carries the writable fields of a user account.
type UserInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	AccessBoats string
	Permissions string
	Phone       string
}

// UserService manages user accounts. Every operation requires the caller to
// hold the "all" permission (admins implicitly do).
type UserService interface {
	// List returns active users, sanitized.
	List(ctx context.Context, caller *domain.User) ([]domain.User, error)
	Create(ctx context.Context, caller *domain.User, in UserInput) (string, error)
	Update(ctx context.Context, caller *domain.User, id string, in UserInput) error
	// Deactivate is the soft delete: the active flag goes to No.
	Deactivate(ctx context.Context, caller *domain.User, id string) error
}
