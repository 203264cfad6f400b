package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

func newBookingService(bookings *stubBookingRepo, boats *stubBoatRepo, tripTypes *stubTripTypeRepo) *BookingService {
	s := NewBookingService(bookings, boats, tripTypes, NewAccessControl(), zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 8, 9, 10, 0, 0, 0, time.UTC) }
	return s
}

func testTripTypes() *stubTripTypeRepo {
	return &stubTripTypeRepo{tripTypes: []domain.TripType{
		{Type: "private", Label: "Private", HexColor: "#F4D03F", IsActive: true},
		{Type: "shared", Label: "Shared", HexColor: "#2E86C1", IsActive: true},
	}}
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()
	bookings := &stubBookingRepo{}
	svc := newBookingService(bookings, testFleet(), testTripTypes())

	id, err := svc.Create(ctx, adminUser(), ports.BookingInput{
		Date:     "2025-08-09",
		Boat:     "MAYA",
		TripType: "private",
		Clients:  "Smith family",
		TotalPax: 4,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(id, "BOOK-20250809-") || len(id) != len("BOOK-20250809-XXXX") {
		t.Errorf("unexpected booking ID format: %q", id)
	}

	b := bookings.bookings[0]
	if b.Status != domain.StatusConfirmed {
		t.Errorf("status = %q, want default Confirmed", b.Status)
	}
	if b.TripColorHex != "#F4D03F" {
		t.Errorf("trip color = %q, want denormalized #F4D03F", b.TripColorHex)
	}
	if b.IsArchived {
		t.Error("new booking must not be archived")
	}
	if !b.CreatedAt.Equal(b.UpdatedAt) {
		t.Error("created and updated timestamps should match on create")
	}
}

func TestBookingCreateUnknownTripTypeGetsDefaultColor(t *testing.T) {
	bookings := &stubBookingRepo{}
	svc := newBookingService(bookings, testFleet(), testTripTypes())

	if _, err := svc.Create(context.Background(), adminUser(), ports.BookingInput{
		Date: "2025-08-09", Boat: "MAYA", TripType: "fishing", Clients: "A",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := bookings.bookings[0].TripColorHex; got != domain.DefaultTripColorHex {
		t.Errorf("trip color = %q, want fallback %q", got, domain.DefaultTripColorHex)
	}
}

func TestBookingIDUniqueness(t *testing.T) {
	svc := newBookingService(&stubBookingRepo{}, testFleet(), testTripTypes())
	now := time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]struct{})
	const n = 10000
	for i := 0; i < n; i++ {
		seen[svc.generateBookingID(now)] = struct{}{}
	}
	// 36^4 tokens; a few same-day collisions over 10k draws are expected,
	// but the overwhelming majority must be distinct.
	if len(seen) < n*99/100 {
		t.Errorf("only %d distinct IDs out of %d", len(seen), n)
	}
	for id := range seen {
		if !strings.HasPrefix(id, "BOOK-20250809-") {
			t.Fatalf("bad ID %q", id)
		}
		token := strings.TrimPrefix(id, "BOOK-20250809-")
		if len(token) != 4 || strings.ToUpper(token) != token {
			t.Fatalf("bad token in %q", id)
		}
	}
}

func TestBookingCreatePermissions(t *testing.T) {
	svc := newBookingService(&stubBookingRepo{}, testFleet(), testTripTypes())
	in := ports.BookingInput{Date: "2025-08-09", Boat: "MAYA", TripType: "private", Clients: "A"}

	if _, err := svc.Create(context.Background(), staffUser("1", "view"), in); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("view-only caller: err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Create(context.Background(), staffUser("2", "edit"), in); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("caller scoped to PEARL creating on MAYA: err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Create(context.Background(), staffUser("1", "edit"), in); err != nil {
		t.Errorf("caller scoped to MAYA: %v", err)
	}
}

func TestBookingListScoping(t *testing.T) {
	ctx := context.Background()
	bookings := &stubBookingRepo{bookings: []domain.Booking{
		{ID: "BOOK-20250809-AAAA", Date: "2025-08-09", Boat: "MAYA"},
		{ID: "BOOK-20250809-BBBB", Date: "2025-08-09", Boat: "PEARL"},
		{ID: "BOOK-20250809-CCCC", Date: "2025-08-09", Boat: "MAYA", IsArchived: true},
	}}
	svc := newBookingService(bookings, testFleet(), testTripTypes())

	t.Run("admin sees all non-archived", func(t *testing.T) {
		got, err := svc.List(ctx, adminUser())
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Errorf("got %d bookings, want 2 (archived excluded)", len(got))
		}
	})

	t.Run("scoped staff sees own boats only", func(t *testing.T) {
		got, err := svc.List(ctx, staffUser("2", "view"))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Boat != "PEARL" {
			t.Errorf("got %v, want only the PEARL booking", got)
		}
	})

	t.Run("no view permission", func(t *testing.T) {
		if _, err := svc.List(ctx, staffUser("*", "")); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("err = %v, want ErrUnauthorized", err)
		}
	})
}

func TestBookingUpdatePreservesProvenance(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	bookings := &stubBookingRepo{bookings: []domain.Booking{{
		ID:        "BOOK-20250801-AAAA",
		Date:      "2025-08-09",
		Boat:      "MAYA",
		TripType:  "private",
		Status:    domain.StatusPending,
		Clients:   "Smith family",
		CreatedAt: created,
		UpdatedAt: created,
	}}}
	svc := newBookingService(bookings, testFleet(), testTripTypes())

	err := svc.Update(ctx, adminUser(), "BOOK-20250801-AAAA", ports.BookingInput{
		Date:     "2025-08-10",
		Boat:     "PEARL",
		TripType: "shared",
		Clients:  "Smith family",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	b := bookings.bookings[0]
	if b.ID != "BOOK-20250801-AAAA" {
		t.Error("ID must survive updates")
	}
	if !b.CreatedAt.Equal(created) {
		t.Error("CreatedAt must survive updates")
	}
	if b.UpdatedAt.Equal(created) {
		t.Error("UpdatedAt must be refreshed")
	}
	if b.Status != domain.StatusPending {
		t.Errorf("empty status in input must keep the existing status, got %q", b.Status)
	}
	if b.TripColorHex != "#2E86C1" {
		t.Errorf("trip color must follow the new trip type, got %q", b.TripColorHex)
	}
}

func TestBookingArchiveIsNonDestructive(t *testing.T) {
	ctx := context.Background()
	bookings := &stubBookingRepo{bookings: []domain.Booking{
		{ID: "BOOK-20250809-AAAA", Boat: "MAYA", Clients: "Smith family", TotalPax: 4},
	}}
	svc := newBookingService(bookings, testFleet(), testTripTypes())

	if err := svc.Archive(ctx, adminUser(), "BOOK-20250809-AAAA"); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	if len(bookings.bookings) != 1 {
		t.Fatal("archive must not remove the row")
	}
	b := bookings.bookings[0]
	if !b.IsArchived {
		t.Error("archived flag not set")
	}
	if b.Clients != "Smith family" || b.TotalPax != 4 {
		t.Error("archive must not alter other fields")
	}

	if err := svc.Archive(ctx, staffUser("2", "edit"), "BOOK-20250809-AAAA"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("archive outside boat scope: err = %v, want ErrUnauthorized", err)
	}
}

func TestBookingNotFound(t *testing.T) {
	svc := newBookingService(&stubBookingRepo{}, testFleet(), testTripTypes())
	if err := svc.Archive(context.Background(), adminUser(), "BOOK-20250809-ZZZZ"); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("err = %v, want ErrBookingNotFound", err)
	}
}
