package ports

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// TripTypeInput carries the writable fields of a trip type.
type TripTypeInput struct {
	Type        string
	Label       string
	HexColor    string
	Description string
}

// TripTypeService manages trip type configuration. The active list is public;
// writes require the "all" permission.
type TripTypeService interface {
	List(ctx context.Context) ([]domain.TripType, error)
	Create(ctx context.Context, caller *domain.User, in TripTypeInput) error
	Update(ctx context.Context, caller *domain.User, code string, in TripTypeInput) error
	Deactivate(ctx context.Context, caller *domain.User, code string) error
}
