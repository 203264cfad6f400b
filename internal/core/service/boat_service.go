package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// BoatService manages the fleet. Non-admin reads are filtered to the
// caller's boat scope and, like booking reads, require the "view"
// permission; writes require "all".
type BoatService struct {
	boats  ports.BoatRepository
	access *AccessControl
	now    func() time.Time
	logger zerolog.Logger
}

func NewBoatService(boats ports.BoatRepository, access *AccessControl, logger zerolog.Logger) *BoatService {
	return &BoatService{boats: boats, access: access, now: time.Now, logger: logger}
}

func (s *BoatService) List(ctx context.Context, caller *domain.User) ([]domain.Boat, error) {
	if !caller.IsAdmin() && !s.access.HasPermission(caller, domain.PermView) {
		return nil, domain.ErrUnauthorized
	}

	all, err := s.boats.List(ctx)
	if err != nil {
		return nil, err
	}

	scope := s.access.ScopedBoatIDs(caller)
	visible := make([]domain.Boat, 0, len(all))
	for _, b := range all {
		if !b.IsActive {
			continue
		}
		if !scope.Contains(b.ID) {
			continue
		}
		visible = append(visible, b)
	}
	return visible, nil
}

func (s *BoatService) Create(ctx context.Context, caller *domain.User, in ports.BoatInput) (string, error) {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return "", domain.ErrUnauthorized
	}

	all, err := s.boats.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(all))
	for i, b := range all {
		ids[i] = b.ID
	}

	boat := &domain.Boat{
		ID:               nextNumericID(ids),
		Name:             in.Name,
		ColorLabel:       in.ColorLabel,
		ColorHex:         in.ColorHex,
		MaxCapacity:      in.MaxCapacity,
		Managers:         in.Managers,
		TripTypesAllowed: in.TripTypesAllowed,
		IsActive:         true,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.boats.Append(ctx, boat); err != nil {
		s.logger.Error().Err(err).Msg("failed to create boat")
		return "", err
	}
	s.logger.Info().Str("boat_id", boat.ID).Str("name", boat.Name).Msg("boat created")
	return boat.ID, nil
}

func (s *BoatService) Update(ctx context.Context, caller *domain.User, id string, in ports.BoatInput) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.boats.FindByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Name = in.Name
	existing.ColorLabel = in.ColorLabel
	existing.ColorHex = in.ColorHex
	existing.MaxCapacity = in.MaxCapacity
	existing.Managers = in.Managers
	existing.TripTypesAllowed = in.TripTypesAllowed

	if err := s.boats.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("boat_id", id).Msg("failed to update boat")
		return err
	}
	s.logger.Info().Str("boat_id", id).Msg("boat updated")
	return nil
}

func (s *BoatService) Deactivate(ctx context.Context, caller *domain.User, id string) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.boats.FindByID(ctx, id)
	if err != nil {
		return err
	}

	existing.IsActive = false
	if err := s.boats.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("boat_id", id).Msg("failed to deactivate boat")
		return err
	}
	s.logger.Info().Str("boat_id", id).Msg("boat deactivated")
	return nil
}
