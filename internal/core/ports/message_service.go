package ports

import "context"

// MessageService renders the day's bookings into dispatch text. Both variants
// are pure functions of the stored bookings plus a point-in-time boat lookup:
// rendering twice with unchanged data yields byte-identical output.
type MessageService interface {
	// DriverMessage renders one ordinal-numbered pickup block per booking.
	DriverMessage(ctx context.Context, date string) (string, error)
	// StaffMessage renders bookings grouped by boat with per-boat totals.
	StaffMessage(ctx context.Context, date string) (string, error)
}
