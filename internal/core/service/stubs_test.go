package service

import (
	"context"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// In-memory repository stubs. They clone what they return so tests cannot
// mutate stored state by accident.

type stubBookingRepo struct {
	bookings []domain.Booking
	listErr  error
}

func (r *stubBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *stubBookingRepo) FindByID(ctx context.Context, id string) (*domain.Booking, int, error) {
	for i, b := range r.bookings {
		if b.ID == id {
			clone := b
			return &clone, i, nil
		}
	}
	return nil, 0, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) Append(ctx context.Context, b *domain.Booking) error {
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *stubBookingRepo) Replace(ctx context.Context, index int, b *domain.Booking) error {
	r.bookings[index] = *b
	return nil
}

type stubBoatRepo struct {
	boats []domain.Boat
}

func (r *stubBoatRepo) List(ctx context.Context) ([]domain.Boat, error) {
	out := make([]domain.Boat, len(r.boats))
	copy(out, r.boats)
	return out, nil
}

func (r *stubBoatRepo) FindByID(ctx context.Context, id string) (*domain.Boat, int, error) {
	for i, b := range r.boats {
		if b.ID == id {
			clone := b
			return &clone, i, nil
		}
	}
	return nil, 0, domain.ErrBoatNotFound
}

func (r *stubBoatRepo) NameToID(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(r.boats))
	for _, b := range r.boats {
		if b.IsActive {
			out[b.Name] = b.ID
		}
	}
	return out, nil
}

func (r *stubBoatRepo) Append(ctx context.Context, b *domain.Boat) error {
	r.boats = append(r.boats, *b)
	return nil
}

func (r *stubBoatRepo) Replace(ctx context.Context, index int, b *domain.Boat) error {
	r.boats[index] = *b
	return nil
}

type stubTripTypeRepo struct {
	tripTypes []domain.TripType
}

func (r *stubTripTypeRepo) List(ctx context.Context) ([]domain.TripType, error) {
	out := make([]domain.TripType, len(r.tripTypes))
	copy(out, r.tripTypes)
	return out, nil
}

func (r *stubTripTypeRepo) FindByType(ctx context.Context, code string) (*domain.TripType, int, error) {
	for i, t := range r.tripTypes {
		if t.Type == code {
			clone := t
			return &clone, i, nil
		}
	}
	return nil, 0, domain.ErrTripTypeNotFound
}

func (r *stubTripTypeRepo) Append(ctx context.Context, t *domain.TripType) error {
	r.tripTypes = append(r.tripTypes, *t)
	return nil
}

func (r *stubTripTypeRepo) Replace(ctx context.Context, index int, t *domain.TripType) error {
	r.tripTypes[index] = *t
	return nil
}

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, int, error) {
	for i, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, i, nil
		}
	}
	return nil, 0, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, int, error) {
	for i, u := range r.users {
		if u.Email == email {
			clone := u
			return &clone, i, nil
		}
	}
	return nil, 0, domain.ErrUserNotFound
}

func (r *stubUserRepo) Append(ctx context.Context, u *domain.User) error {
	r.users = append(r.users, *u)
	return nil
}

func (r *stubUserRepo) Replace(ctx context.Context, index int, u *domain.User) error {
	r.users[index] = *u
	return nil
}

// --- Fixtures ---

func adminUser() *domain.User {
	return &domain.User{
		ID:          "1",
		Name:        "Admin",
		Email:       "admin@example.com",
		Role:        domain.RoleAdmin,
		AccessBoats: domain.AllBoats,
		Permissions: domain.PermAll,
		IsActive:    true,
	}
}

func staffUser(accessBoats, permissions string) *domain.User {
	return &domain.User{
		ID:          "2",
		Name:        "Staff",
		Email:       "staff@example.com",
		Role:        domain.RoleStaff,
		AccessBoats: accessBoats,
		Permissions: permissions,
		IsActive:    true,
	}
}

func testFleet() *stubBoatRepo {
	return &stubBoatRepo{boats: []domain.Boat{
		{ID: "1", Name: "MAYA", ColorLabel: "Yellow", ColorHex: "#F4D03F", IsActive: true},
		{ID: "2", Name: "PEARL", ColorLabel: "Orange", ColorHex: "#E67E22", IsActive: true},
		{ID: "3", Name: "CORAL", ColorLabel: "Blue", ColorHex: "#2E86C1", IsActive: false},
	}}
}
