package tables

import (
	"context"
	"fmt"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// TripTypeRepository maps the TripTypes table to domain.TripType records.
type TripTypeRepository struct {
	store ports.TableStore
	cache ports.TableCache
}

func NewTripTypeRepository(store ports.TableStore, cache ports.TableCache) *TripTypeRepository {
	return &TripTypeRepository{store: store, cache: cache}
}

func (r *TripTypeRepository) List(ctx context.Context) ([]domain.TripType, error) {
	rows, err := r.cache.GetTable(ctx, TableTripTypes)
	if err != nil {
		return nil, fmt.Errorf("read trip types: %w", err)
	}
	types := make([]domain.TripType, 0, len(rows))
	for _, row := range dataRows(rows) {
		types = append(types, tripTypeFromRow(row))
	}
	return types, nil
}

func (r *TripTypeRepository) FindByType(ctx context.Context, code string) (*domain.TripType, int, error) {
	rows, err := r.cache.GetTable(ctx, TableTripTypes)
	if err != nil {
		return nil, 0, fmt.Errorf("read trip types: %w", err)
	}
	for i, row := range dataRows(rows) {
		if cell(row, colTripTypeType) == code {
			t := tripTypeFromRow(row)
			return &t, i, nil
		}
	}
	return nil, 0, domain.ErrTripTypeNotFound
}

func (r *TripTypeRepository) Append(ctx context.Context, t *domain.TripType) error {
	if err := r.store.AppendRow(ctx, TableTripTypes, tripTypeToRow(t)); err != nil {
		return fmt.Errorf("append trip type: %w", err)
	}
	r.cache.Invalidate(ctx, TableTripTypes)
	return nil
}

func (r *TripTypeRepository) Replace(ctx context.Context, index int, t *domain.TripType) error {
	if err := r.store.WriteRow(ctx, TableTripTypes, index, tripTypeToRow(t)); err != nil {
		return fmt.Errorf("replace trip type: %w", err)
	}
	r.cache.Invalidate(ctx, TableTripTypes)
	return nil
}

func tripTypeFromRow(row ports.Row) domain.TripType {
	return domain.TripType{
		Type:        cell(row, colTripTypeType),
		Label:       cell(row, colTripTypeLabel),
		HexColor:    cell(row, colTripTypeHexColor),
		Description: cell(row, colTripTypeDescription),
		IsActive:    parseYesNo(cell(row, colTripTypeIsActive)),
		CreatedAt:   parseTime(cell(row, colTripTypeCreatedAt)),
	}
}

func tripTypeToRow(t *domain.TripType) ports.Row {
	row := make(ports.Row, len(TripTypeHeaders))
	row[colTripTypeType] = t.Type
	row[colTripTypeLabel] = t.Label
	row[colTripTypeHexColor] = t.HexColor
	row[colTripTypeDescription] = t.Description
	row[colTripTypeIsActive] = yesNo(t.IsActive)
	row[colTripTypeCreatedAt] = formatTime(t.CreatedAt)
	return row
}
