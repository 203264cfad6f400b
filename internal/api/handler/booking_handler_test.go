package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

type stubBookingService struct {
	bookings []domain.Booking
	err      error

	createdInput *ports.BookingInput
	updatedID    string
	archivedID   string
	gotCaller    *domain.User
}

func (s *stubBookingService) List(ctx context.Context, caller *domain.User) ([]domain.Booking, error) {
	s.gotCaller = caller
	return s.bookings, s.err
}

func (s *stubBookingService) Create(ctx context.Context, caller *domain.User, in ports.BookingInput) (string, error) {
	s.gotCaller = caller
	s.createdInput = &in
	if s.err != nil {
		return "", s.err
	}
	return "BOOK-20250809-AAAA", nil
}

func (s *stubBookingService) Update(ctx context.Context, caller *domain.User, id string, in ports.BookingInput) error {
	s.gotCaller = caller
	s.updatedID = id
	return s.err
}

func (s *stubBookingService) Archive(ctx context.Context, caller *domain.User, id string) error {
	s.gotCaller = caller
	s.archivedID = id
	return s.err
}

func authedContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, &domain.User{ID: "1", Role: domain.RoleAdmin, IsActive: true})
	return c, rec
}

func TestBookingHandlerCreate(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	c, rec := authedContext(t, http.MethodPost, "/v1/bookings",
		`{"date":"2025-08-09","boat":"MAYA","tripType":"private","clients":"Smith family","totalPax":4}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("code = %d, want 201", rec.Code)
	}
	if svc.createdInput == nil || svc.createdInput.Boat != "MAYA" || svc.createdInput.TotalPax != 4 {
		t.Errorf("input not mapped: %+v", svc.createdInput)
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.ID != "BOOK-20250809-AAAA" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestBookingHandlerCreateValidation(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing boat", `{"date":"2025-08-09","tripType":"private","clients":"A"}`},
		{"bad date format", `{"date":"09/08/2025","boat":"MAYA","tripType":"private","clients":"A"}`},
		{"bad status", `{"date":"2025-08-09","boat":"MAYA","tripType":"private","clients":"A","status":"Maybe"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := authedContext(t, http.MethodPost, "/v1/bookings", tt.body)
			err := h.Create(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Errorf("err = %v, want 400", err)
			}
		})
	}
}

func TestBookingHandlerArchive(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	c, rec := authedContext(t, http.MethodDelete, "/v1/bookings/BOOK-20250809-AAAA", "")
	c.SetParamNames("id")
	c.SetParamValues("BOOK-20250809-AAAA")

	if err := h.Archive(c); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", rec.Code)
	}
	if svc.archivedID != "BOOK-20250809-AAAA" {
		t.Errorf("archived ID = %q", svc.archivedID)
	}
}

func TestBookingHandlerRequiresUser(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("err = %v, want 401 when no user is injected", err)
	}
}
