package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/zanzibarboats/booking-system/internal/api/metrics"
	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// BookingService implements the permissioned booking use-cases over the
// Bookings table, consulting AccessControl for every decision.
type BookingService struct {
	bookings  ports.BookingRepository
	boats     ports.BoatRepository
	tripTypes ports.TripTypeRepository
	access    *AccessControl
	now       func() time.Time
	logger    zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	boats ports.BoatRepository,
	tripTypes ports.TripTypeRepository,
	access *AccessControl,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		boats:     boats,
		tripTypes: tripTypes,
		access:    access,
		now:       time.Now,
		logger:    logger,
	}
}

// List returns non-archived bookings visible to the caller. Admins see
// everything; others need the "view" permission and are filtered to their
// boat scope.
func (s *BookingService) List(ctx context.Context, caller *domain.User) ([]domain.Booking, error) {
	if !caller.IsAdmin() && !s.access.HasPermission(caller, domain.PermView) {
		return nil, domain.ErrUnauthorized
	}

	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	var nameToID map[string]string
	scope := s.access.ScopedBoatIDs(caller)
	if !scope.All {
		if nameToID, err = s.boats.NameToID(ctx); err != nil {
			return nil, err
		}
	}

	visible := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.IsArchived {
			continue
		}
		if !scope.All && !scope.Contains(nameToID[b.Boat]) {
			continue
		}
		visible = append(visible, b)
	}
	return visible, nil
}

// Create appends a new booking and returns its generated identifier.
func (s *BookingService) Create(ctx context.Context, caller *domain.User, in ports.BookingInput) (string, error) {
	if !s.access.HasPermission(caller, domain.PermEdit) {
		return "", domain.ErrUnauthorized
	}

	nameToID, err := s.boats.NameToID(ctx)
	if err != nil {
		return "", err
	}
	if !s.access.AuthorizeBoatAccess(caller, in.Boat, nameToID) {
		return "", domain.ErrUnauthorized
	}

	status := domain.BookingStatus(in.Status)
	if status == "" {
		status = domain.StatusConfirmed
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:           s.generateBookingID(now),
		Date:         in.Date,
		Boat:         in.Boat,
		TripType:     in.TripType,
		TripColorHex: s.resolveTripColor(ctx, in.TripType),
		Status:       status,
		Clients:      in.Clients,
		Phone:        in.Phone,
		Adults:       in.Adults,
		Children:     in.Children,
		ChildAges:    in.ChildAges,
		TotalPax:     in.TotalPax,
		Payment:      in.Payment,
		Paid:         in.Paid,
		Commission:   in.Commission,
		Partner:      in.Partner,
		Driver:       in.Driver,
		Hotel:        in.Hotel,
		Transfer:     in.Transfer,
		TransferTime: in.TransferTime,
		Comments:     in.Comments,
		IsArchived:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.bookings.Append(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return "", err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(in.TripType).Inc()
	s.logger.Info().Str("booking_id", booking.ID).Str("boat", booking.Boat).Str("date", booking.Date).Msg("booking created")
	return booking.ID, nil
}

// Update replaces every field of the booking except its identifier and
// creation timestamp. The boat is re-resolved and re-authorized because the
// update may move the booking to a different boat.
func (s *BookingService) Update(ctx context.Context, caller *domain.User, id string, in ports.BookingInput) error {
	if !s.access.HasPermission(caller, domain.PermEdit) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	nameToID, err := s.boats.NameToID(ctx)
	if err != nil {
		return err
	}
	if !s.access.AuthorizeBoatAccess(caller, in.Boat, nameToID) {
		return domain.ErrUnauthorized
	}

	status := domain.BookingStatus(in.Status)
	if status == "" {
		status = existing.Status
	}

	updated := &domain.Booking{
		ID:           existing.ID,
		Date:         in.Date,
		Boat:         in.Boat,
		TripType:     in.TripType,
		TripColorHex: s.resolveTripColor(ctx, in.TripType),
		Status:       status,
		Clients:      in.Clients,
		Phone:        in.Phone,
		Adults:       in.Adults,
		Children:     in.Children,
		ChildAges:    in.ChildAges,
		TotalPax:     in.TotalPax,
		Payment:      in.Payment,
		Paid:         in.Paid,
		Commission:   in.Commission,
		Partner:      in.Partner,
		Driver:       in.Driver,
		Hotel:        in.Hotel,
		Transfer:     in.Transfer,
		TransferTime: in.TransferTime,
		Comments:     in.Comments,
		IsArchived:   existing.IsArchived,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    s.now().UTC(),
	}

	if err := s.bookings.Replace(ctx, index, updated); err != nil {
		s.logger.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")
		return err
	}

	s.logger.Info().Str("booking_id", id).Msg("booking updated")
	return nil
}

// Archive is the soft delete: the archived flag flips, nothing else changes,
// and the row stays in the table for audit.
func (s *BookingService) Archive(ctx context.Context, caller *domain.User, id string) error {
	if !s.access.HasPermission(caller, domain.PermEdit) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	nameToID, err := s.boats.NameToID(ctx)
	if err != nil {
		return err
	}
	if !s.access.AuthorizeBoatAccess(caller, existing.Boat, nameToID) {
		return domain.ErrUnauthorized
	}

	existing.IsArchived = true
	if err := s.bookings.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("booking_id", id).Msg("failed to archive booking")
		return err
	}

	s.logger.Info().Str("booking_id", id).Msg("booking archived")
	return nil
}

// resolveTripColor denormalizes the trip type's color onto the booking,
// falling back to the default gray for unknown or inactive-table reads.
func (s *BookingService) resolveTripColor(ctx context.Context, tripType string) string {
	t, _, err := s.tripTypes.FindByType(ctx, tripType)
	if err != nil || t.HexColor == "" {
		return domain.DefaultTripColorHex
	}
	return t.HexColor
}

const idTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateBookingID returns an identifier in the format
// BOOK-<YYYYMMDD>-<4-char token>. The random suffix is not checked for
// collisions; at this system's scale they are astronomically unlikely.
func (s *BookingService) generateBookingID(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive the token from the clock
		n := now.UnixNano()
		for i := range b {
			b[i] = byte(n >> (8 * i))
		}
	}
	token := make([]byte, 4)
	for i, v := range b {
		token[i] = idTokenAlphabet[int(v)%len(idTokenAlphabet)]
	}
	return fmt.Sprintf("BOOK-%s-%s", now.Format("20060102"), token)
}
