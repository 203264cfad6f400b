package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zanzibarboats/booking-system/internal/api/metrics"
	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// Fixed fallbacks used when a booking leaves a field blank. The pickup time
// default mirrors the fleet's standard morning departure.
const (
	defaultPickupTime     = "8:30"
	defaultPickupLocation = "To be confirmed"
	defaultDriverName     = "TBA"
	defaultBoatSwatch     = "⚪"
	meetingLine           = "Meeting time : 8:00 at the office"
	noBookingsMessage     = "No bookings for this date."
)

// boatSwatches renders a boat's color label as an emoji swatch.
var boatSwatches = map[string]string{
	"yellow": "🟡",
	"orange": "🟠",
	"blue":   "🔵",
	"red":    "🔴",
	"green":  "🟢",
	"purple": "🟣",
	"brown":  "🟤",
	"black":  "⚫",
}

// MessageService renders the day's bookings into dispatch text for drivers
// and staff. It consumes the read contract only and performs no writes, so
// rendering twice over unchanged data is byte-identical.
type MessageService struct {
	bookings ports.BookingRepository
	boats    ports.BoatRepository
	logger   zerolog.Logger
}

func NewMessageService(bookings ports.BookingRepository, boats ports.BoatRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{bookings: bookings, boats: boats, logger: logger}
}

// DriverMessage renders one ordinal-numbered pickup block per booking on the
// given date.
func (s *MessageService) DriverMessage(ctx context.Context, date string) (string, error) {
	day, err := s.bookingsOn(ctx, date)
	if err != nil {
		return "", err
	}
	metrics.MessagesRenderedTotal.WithLabelValues("driver").Inc()
	if len(day) == 0 {
		return noBookingsMessage, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚐 Good morning team! Pickups for %s\n", date)
	for i, bk := range day {
		fmt.Fprintf(&b, "\n%d)\n", i+1)
		fmt.Fprintf(&b, "Name : %s\n", bk.Clients)
		fmt.Fprintf(&b, "Number of pax : %d pax\n", bk.TotalPax)
		fmt.Fprintf(&b, "Pick up time : %s\n", orDefault(bk.TransferTime, defaultPickupTime))
		fmt.Fprintf(&b, "Pick up location : %s\n", orDefault(bk.Hotel, defaultPickupLocation))
		fmt.Fprintf(&b, "Driver : %s\n", orDefault(bk.Driver, defaultDriverName))
	}
	return b.String(), nil
}

// StaffMessage renders the day grouped by boat, in order of each boat's first
// appearance, with per-boat passenger totals.
func (s *MessageService) StaffMessage(ctx context.Context, date string) (string, error) {
	day, err := s.bookingsOn(ctx, date)
	if err != nil {
		return "", err
	}
	metrics.MessagesRenderedTotal.WithLabelValues("staff").Inc()
	if len(day) == 0 {
		return noBookingsMessage, nil
	}

	boatsByName, err := s.boatLookup(ctx)
	if err != nil {
		return "", err
	}

	var order []string
	groups := make(map[string][]domain.Booking)
	for _, bk := range day {
		if _, seen := groups[bk.Boat]; !seen {
			order = append(order, bk.Boat)
		}
		groups[bk.Boat] = append(groups[bk.Boat], bk)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌊 Trips for %s\n", date)
	fmt.Fprintf(&b, "%d boats going out\n", len(order))

	for _, name := range order {
		group := groups[name]
		total := 0
		for _, bk := range group {
			total += bk.TotalPax
		}

		fmt.Fprintf(&b, "\n⛵ %s %s\n", name, boatSwatch(boatsByName, name))
		fmt.Fprintf(&b, "Trip : %s — %d pax\n", group[0].TripType, total)
		fmt.Fprintf(&b, "%s\n", meetingLine)
		for _, bk := range group {
			fmt.Fprintf(&b, "- %s — %d pax", bk.Clients, bk.TotalPax)
			if bk.Partner != "" {
				fmt.Fprintf(&b, " (via %s)", bk.Partner)
			}
			b.WriteString("\n")
			if !isZeroPayment(bk.Payment) {
				fmt.Fprintf(&b, "  Payment : %s", bk.Payment)
				if bk.Paid != "" {
					fmt.Fprintf(&b, " (%s)", bk.Paid)
				}
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  Driver : %s", orDefault(bk.Driver, defaultDriverName))
			if bk.Commission != "" {
				fmt.Fprintf(&b, " | Commission : %s", bk.Commission)
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// bookingsOn returns the date's non-archived, non-cancelled bookings in
// table order.
func (s *MessageService) bookingsOn(ctx context.Context, date string) ([]domain.Booking, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	var day []domain.Booking
	for _, bk := range all {
		if bk.IsArchived || bk.Status == domain.StatusCancelled {
			continue
		}
		if bk.Date == date {
			day = append(day, bk)
		}
	}
	return day, nil
}

func (s *MessageService) boatLookup(ctx context.Context) (map[string]domain.Boat, error) {
	boats, err := s.boats.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]domain.Boat, len(boats))
	for _, boat := range boats {
		byName[boat.Name] = boat
	}
	return byName, nil
}

func boatSwatch(boats map[string]domain.Boat, name string) string {
	boat, ok := boats[name]
	if !ok {
		return defaultBoatSwatch
	}
	if sw, ok := boatSwatches[strings.ToLower(boat.ColorLabel)]; ok {
		return sw
	}
	return defaultBoatSwatch
}

// isZeroPayment reports whether the payment cell is blank or a literal
// zero-amount marker such as "0", "0€" or "0$".
func isZeroPayment(payment string) bool {
	digits := strings.Builder{}
	for _, r := range payment {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return true
	}
	return strings.Trim(digits.String(), "0") == ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
