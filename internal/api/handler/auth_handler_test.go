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

type stubAuthService struct {
	result *ports.LoginResult
	err    error

	gotEmail    string
	gotPassword string
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	s.gotEmail = email
	s.gotPassword = password
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandlerSuccess(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubAuthService{result: &ports.LoginResult{
		Token: "tok",
		User:  &domain.User{ID: "1", Email: "amina@example.com", Role: domain.RoleStaff},
	}}
	h := NewAuthHandler(svc)

	c, rec := postJSON(t, e, "/auth/login", `{"email":"amina@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", rec.Code)
	}
	if svc.gotEmail != "amina@example.com" || svc.gotPassword != "s3cret" {
		t.Error("credentials not passed through")
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Token != "tok" || resp.User == nil {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestLoginHandlerValidation(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing password", `{"email":"amina@example.com"}`},
		{"bad email", `{"email":"nope","password":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := postJSON(t, e, "/auth/login", tt.body)
			err := h.Login(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Errorf("err = %v, want 400", err)
			}
		})
	}
}

func TestLoginHandlerPropagatesServiceError(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidPassword})

	c, _ := postJSON(t, e, "/auth/login", `{"email":"amina@example.com","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidPassword {
		t.Errorf("err = %v, want the domain error passed through to the error handler", err)
	}
}
