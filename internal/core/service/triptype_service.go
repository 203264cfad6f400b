package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// TripTypeService manages trip type configuration. Listing active types is
// open to everyone, including unauthenticated clients; writes require "all".
type TripTypeService struct {
	tripTypes ports.TripTypeRepository
	access    *AccessControl
	now       func() time.Time
	logger    zerolog.Logger
}

func NewTripTypeService(tripTypes ports.TripTypeRepository, access *AccessControl, logger zerolog.Logger) *TripTypeService {
	return &TripTypeService{tripTypes: tripTypes, access: access, now: time.Now, logger: logger}
}

func (s *TripTypeService) List(ctx context.Context) ([]domain.TripType, error) {
	all, err := s.tripTypes.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.TripType, 0, len(all))
	for _, t := range all {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active, nil
}

func (s *TripTypeService) Create(ctx context.Context, caller *domain.User, in ports.TripTypeInput) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	t := &domain.TripType{
		Type:        in.Type,
		Label:       in.Label,
		HexColor:    in.HexColor,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.tripTypes.Append(ctx, t); err != nil {
		s.logger.Error().Err(err).Msg("failed to create trip type")
		return err
	}
	s.logger.Info().Str("trip_type", t.Type).Msg("trip type created")
	return nil
}

func (s *TripTypeService) Update(ctx context.Context, caller *domain.User, code string, in ports.TripTypeInput) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.tripTypes.FindByType(ctx, code)
	if err != nil {
		return err
	}

	existing.Label = in.Label
	existing.HexColor = in.HexColor
	existing.Description = in.Description

	if err := s.tripTypes.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("trip_type", code).Msg("failed to update trip type")
		return err
	}
	s.logger.Info().Str("trip_type", code).Msg("trip type updated")
	return nil
}

func (s *TripTypeService) Deactivate(ctx context.Context, caller *domain.User, code string) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.tripTypes.FindByType(ctx, code)
	if err != nil {
		return err
	}

	existing.IsActive = false
	if err := s.tripTypes.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("trip_type", code).Msg("failed to deactivate trip type")
		return err
	}
	s.logger.Info().Str("trip_type", code).Msg("trip type deactivated")
	return nil
}
