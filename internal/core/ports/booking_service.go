package ports

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// BookingInput carries the writable fields of a booking. The identifier, the
// trip color, the archived flag and both timestamps are owned by the service.
type BookingInput struct {
	Date         string
	Boat         string
	TripType     string
	Status       string
	Clients      string
	Phone        string
	Adults       int
	Children     int
	ChildAges    string
	TotalPax     int
	Payment      string
	Paid         string
	Commission   string
	Partner      string
	Driver       string
	Hotel        string
	Transfer     bool
	TransferTime string
	Comments     string
}

// BookingService defines the permissioned booking use-cases.
type BookingService interface {
	// List returns non-archived bookings visible to the caller: everything for
	// admins, otherwise the caller needs the "view" permission and sees only
	// bookings on boats within their access list.
	List(ctx context.Context, caller *domain.User) ([]domain.Booking, error)
	// Create appends a new booking and returns its generated identifier.
	Create(ctx context.Context, caller *domain.User, in BookingInput) (string, error)
	Update(ctx context.Context, caller *domain.User, id string, in BookingInput) error
	// Archive is the soft delete: it sets the archived flag and nothing else.
	Archive(ctx context.Context, caller *domain.User, id string) error
}
