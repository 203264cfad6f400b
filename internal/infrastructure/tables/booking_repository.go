package tables

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// BookingRepository maps the Bookings table to domain.Booking records.
type BookingRepository struct {
	store ports.TableStore
	cache ports.TableCache
}

func NewBookingRepository(store ports.TableStore, cache ports.TableCache) *BookingRepository {
	return &BookingRepository{store: store, cache: cache}
}

// List returns every booking row, archived included.
func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.cache.GetTable(ctx, TableBookings)
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range dataRows(rows) {
		bookings = append(bookings, bookingFromRow(row))
	}
	return bookings, nil
}

// FindByID scans for a booking by identifier and returns its data-row index.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, int, error) {
	rows, err := r.cache.GetTable(ctx, TableBookings)
	if err != nil {
		return nil, 0, fmt.Errorf("read bookings: %w", err)
	}
	for i, row := range dataRows(rows) {
		if cell(row, colBookingID) == id {
			b := bookingFromRow(row)
			return &b, i, nil
		}
	}
	return nil, 0, domain.ErrBookingNotFound
}

func (r *BookingRepository) Append(ctx context.Context, b *domain.Booking) error {
	if err := r.store.AppendRow(ctx, TableBookings, bookingToRow(b)); err != nil {
		return fmt.Errorf("append booking: %w", err)
	}
	r.cache.Invalidate(ctx, TableBookings)
	return nil
}

func (r *BookingRepository) Replace(ctx context.Context, index int, b *domain.Booking) error {
	if err := r.store.WriteRow(ctx, TableBookings, index, bookingToRow(b)); err != nil {
		return fmt.Errorf("replace booking: %w", err)
	}
	r.cache.Invalidate(ctx, TableBookings)
	return nil
}

// dataRows strips the header row.
func dataRows(rows []ports.Row) []ports.Row {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

func bookingFromRow(row ports.Row) domain.Booking {
	return domain.Booking{
		ID:           cell(row, colBookingID),
		Date:         cell(row, colBookingDate),
		Boat:         cell(row, colBookingBoat),
		TripType:     cell(row, colBookingTripType),
		TripColorHex: cell(row, colBookingTripColorHex),
		Status:       domain.BookingStatus(cell(row, colBookingStatus)),
		Clients:      cell(row, colBookingClients),
		Phone:        cell(row, colBookingPhone),
		Adults:       atoiOrZero(cell(row, colBookingAdults)),
		Children:     atoiOrZero(cell(row, colBookingChildren)),
		ChildAges:    cell(row, colBookingChildAges),
		TotalPax:     atoiOrZero(cell(row, colBookingTotalPax)),
		Payment:      cell(row, colBookingPayment),
		Paid:         cell(row, colBookingPaid),
		Commission:   cell(row, colBookingCommission),
		Partner:      cell(row, colBookingPartner),
		Driver:       cell(row, colBookingDriver),
		Hotel:        cell(row, colBookingHotel),
		Transfer:     parseYesNo(cell(row, colBookingTransfer)),
		TransferTime: cell(row, colBookingTransferTime),
		Comments:     cell(row, colBookingComments),
		IsArchived:   parseYesNo(cell(row, colBookingIsArchived)),
		CreatedAt:    parseTime(cell(row, colBookingCreatedAt)),
		UpdatedAt:    parseTime(cell(row, colBookingUpdatedAt)),
	}
}

func bookingToRow(b *domain.Booking) ports.Row {
	row := make(ports.Row, len(BookingHeaders))
	row[colBookingID] = b.ID
	row[colBookingDate] = b.Date
	row[colBookingBoat] = b.Boat
	row[colBookingTripType] = b.TripType
	row[colBookingTripColorHex] = b.TripColorHex
	row[colBookingStatus] = string(b.Status)
	row[colBookingClients] = b.Clients
	row[colBookingPhone] = b.Phone
	row[colBookingAdults] = strconv.Itoa(b.Adults)
	row[colBookingChildren] = strconv.Itoa(b.Children)
	row[colBookingChildAges] = b.ChildAges
	row[colBookingTotalPax] = strconv.Itoa(b.TotalPax)
	row[colBookingPayment] = b.Payment
	row[colBookingPaid] = b.Paid
	row[colBookingCommission] = b.Commission
	row[colBookingPartner] = b.Partner
	row[colBookingDriver] = b.Driver
	row[colBookingHotel] = b.Hotel
	row[colBookingTransfer] = yesNo(b.Transfer)
	row[colBookingTransferTime] = b.TransferTime
	row[colBookingComments] = b.Comments
	row[colBookingIsArchived] = yesNo(b.IsArchived)
	row[colBookingCreatedAt] = formatTime(b.CreatedAt)
	row[colBookingUpdatedAt] = formatTime(b.UpdatedAt)
	return row
}
