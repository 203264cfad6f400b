package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

const testSecret = "test-secret"

func newAuthService(users *stubUserRepo) *AuthService {
	s := NewAuthService(users, testSecret, time.Hour, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 8, 9, 10, 0, 0, 0, time.UTC) }
	return s
}

func userWithPassword(stored string) *stubUserRepo {
	return &stubUserRepo{users: []domain.User{{
		ID:       "1",
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: stored,
		Role:     domain.RoleStaff,
		IsActive: true,
	}}}
}

func TestLoginPasswordFormats(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		stored string
	}{
		{"bcrypt", string(hash)},
		{"base64 legacy", base64.StdEncoding.EncodeToString([]byte("s3cret"))},
		{"plaintext legacy", "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := userWithPassword(tt.stored)
			svc := newAuthService(users)

			result, err := svc.Login(context.Background(), "amina@example.com", "s3cret")
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if result.Token == "" {
				t.Error("expected a session token")
			}
			if result.User.Password != "" {
				t.Error("returned user must be sanitized")
			}
			if users.users[0].LastLoginAt.IsZero() {
				t.Error("last login timestamp not stamped")
			}
		})
	}
}

func TestLoginErrorAsymmetry(t *testing.T) {
	users := userWithPassword("s3cret")
	svc := newAuthService(users)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "ghost@example.com", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "amina@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Errorf("wrong password: err = %v, want ErrInvalidPassword", err)
	}
	if _, err := svc.Login(ctx, "", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "amina@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	users := userWithPassword("s3cret")
	users.users[0].IsActive = false
	svc := newAuthService(users)

	if _, err := svc.Login(context.Background(), "amina@example.com", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("inactive account: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	svc := newAuthService(userWithPassword("s3cret"))

	if _, err := svc.Login(context.Background(), "AMINA@example.com", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("case-variant email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginTokenClaims(t *testing.T) {
	svc := newAuthService(userWithPassword("s3cret"))

	result, err := svc.Login(context.Background(), "amina@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time {
		return time.Date(2025, 8, 9, 10, 30, 0, 0, time.UTC)
	}))
	if err != nil || !tkn.Valid {
		t.Fatalf("token did not verify: %v", err)
	}

	if claims["email"] != "amina@example.com" || claims["uid"] != "1" || claims["role"] != domain.RoleStaff {
		t.Errorf("unexpected claims: %v", claims)
	}
	exp, _ := claims["exp"].(float64)
	want := time.Date(2025, 8, 9, 11, 0, 0, 0, time.UTC).Unix()
	if int64(exp) != want {
		t.Errorf("exp = %v, want %v", int64(exp), want)
	}
}
