package tables

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// BoatRepository maps the Boats table to domain.Boat records.
type BoatRepository struct {
	store ports.TableStore
	cache ports.TableCache
}

func NewBoatRepository(store ports.TableStore, cache ports.TableCache) *BoatRepository {
	return &BoatRepository{store: store, cache: cache}
}

func (r *BoatRepository) List(ctx context.Context) ([]domain.Boat, error) {
	rows, err := r.cache.GetTable(ctx, TableBoats)
	if err != nil {
		return nil, fmt.Errorf("read boats: %w", err)
	}
	boats := make([]domain.Boat, 0, len(rows))
	for _, row := range dataRows(rows) {
		boats = append(boats, boatFromRow(row))
	}
	return boats, nil
}

func (r *BoatRepository) FindByID(ctx context.Context, id string) (*domain.Boat, int, error) {
	rows, err := r.cache.GetTable(ctx, TableBoats)
	if err != nil {
		return nil, 0, fmt.Errorf("read boats: %w", err)
	}
	for i, row := range dataRows(rows) {
		if cell(row, colBoatID) == id {
			b := boatFromRow(row)
			return &b, i, nil
		}
	}
	return nil, 0, domain.ErrBoatNotFound
}

// NameToID builds the boat-name → boat-ID lookup from active rows.
func (r *BoatRepository) NameToID(ctx context.Context) (map[string]string, error) {
	boats, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]string, len(boats))
	for _, b := range boats {
		if b.IsActive {
			lookup[b.Name] = b.ID
		}
	}
	return lookup, nil
}

func (r *BoatRepository) Append(ctx context.Context, b *domain.Boat) error {
	if err := r.store.AppendRow(ctx, TableBoats, boatToRow(b)); err != nil {
		return fmt.Errorf("append boat: %w", err)
	}
	r.cache.Invalidate(ctx, TableBoats)
	return nil
}

func (r *BoatRepository) Replace(ctx context.Context, index int, b *domain.Boat) error {
	if err := r.store.WriteRow(ctx, TableBoats, index, boatToRow(b)); err != nil {
		return fmt.Errorf("replace boat: %w", err)
	}
	r.cache.Invalidate(ctx, TableBoats)
	return nil
}

func boatFromRow(row ports.Row) domain.Boat {
	return domain.Boat{
		ID:               cell(row, colBoatID),
		Name:             cell(row, colBoatName),
		ColorLabel:       cell(row, colBoatColorLabel),
		ColorHex:         cell(row, colBoatColorHex),
		MaxCapacity:      atoiOrZero(cell(row, colBoatMaxCapacity)),
		Managers:         cell(row, colBoatManagers),
		TripTypesAllowed: cell(row, colBoatTripTypesAllowed),
		IsActive:         parseYesNo(cell(row, colBoatIsActive)),
		CreatedAt:        parseTime(cell(row, colBoatCreatedAt)),
	}
}

func boatToRow(b *domain.Boat) ports.Row {
	row := make(ports.Row, len(BoatHeaders))
	row[colBoatID] = b.ID
	row[colBoatName] = b.Name
	row[colBoatColorLabel] = b.ColorLabel
	row[colBoatColorHex] = b.ColorHex
	row[colBoatMaxCapacity] = strconv.Itoa(b.MaxCapacity)
	row[colBoatManagers] = b.Managers
	row[colBoatTripTypesAllowed] = b.TripTypesAllowed
	row[colBoatIsActive] = yesNo(b.IsActive)
	row[colBoatCreatedAt] = formatTime(b.CreatedAt)
	return row
}
