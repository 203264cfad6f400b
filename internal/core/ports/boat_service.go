package ports

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// BoatInput carries the writable fields of a boat.
type BoatInput struct {
	Name             string
	ColorLabel       string
	ColorHex         string
	MaxCapacity      int
	Managers         string
	TripTypesAllowed string
}

// BoatService manages the fleet. Reads are boat-scoped for non-admins; writes
// require the "all" permission.
type BoatService interface {
	List(ctx context.Context, caller *domain.User) ([]domain.Boat, error)
	Create(ctx context.Context, caller *domain.User, in BoatInput) (string, error)
	Update(ctx context.Context, caller *domain.User, id string, in BoatInput) error
	Deactivate(ctx context.Context, caller *domain.User, id string) error
}
