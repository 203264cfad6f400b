package ports

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// The entity repositories map table rows to typed records and back. Reads go
// through the TableCache; writes go straight to the TableStore and invalidate
// the table's cache entry before returning. List methods return every mapped
// row, archived and inactive included — visibility filtering is service
// policy, not storage policy.

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	// FindByID locates a booking by identifier via linear scan and returns the
	// record together with its data-row index.
	FindByID(ctx context.Context, id string) (*domain.Booking, int, error)
	Append(ctx context.Context, b *domain.Booking) error
	Replace(ctx context.Context, index int, b *domain.Booking) error
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, int, error)
	// FindByEmail matches the email exactly (case-sensitive).
	FindByEmail(ctx context.Context, email string) (*domain.User, int, error)
	Append(ctx context.Context, u *domain.User) error
	Replace(ctx context.Context, index int, u *domain.User) error
}

type BoatRepository interface {
	List(ctx context.Context) ([]domain.Boat, error)
	FindByID(ctx context.Context, id string) (*domain.Boat, int, error)
	// NameToID returns the boat-name → boat-ID lookup built from active rows.
	NameToID(ctx context.Context) (map[string]string, error)
	Append(ctx context.Context, b *domain.Boat) error
	Replace(ctx context.Context, index int, b *domain.Boat) error
}

type TripTypeRepository interface {
	List(ctx context.Context) ([]domain.TripType, error)
	FindByType(ctx context.Context, code string) (*domain.TripType, int, error)
	Append(ctx context.Context, t *domain.TripType) error
	Replace(ctx context.Context, index int, t *domain.TripType) error
}
