package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zanzibarboats/booking-system/internal/api/metrics"
	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// AuthService validates credentials against the Users table and issues
// session tokens.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// Login authenticates by exact email match against active users. Unknown or
// inactive emails fail with the generic ErrInvalidCredentials; a known user
// with a wrong password gets the more specific ErrInvalidPassword. On
// success the last-login timestamp is stamped and a sanitized user plus a
// session token is returned.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, index, err := s.users.FindByEmail(ctx, email)
	if err != nil || !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !credentialMatches(user.Password, password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("user_id", user.ID).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidPassword
	}

	user.LastLoginAt = s.now().UTC()
	if err := s.users.Replace(ctx, index, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: user.Sanitized()}, nil
}

// credentialMatches accepts three at-rest formats: bcrypt (rows written by
// this system), and the legacy base64 and plaintext values from the
// migration window.
// TODO: re-hash legacy base64/plaintext rows to bcrypt on successful login
// so the window can eventually be closed.
func credentialMatches(stored, password string) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil {
		return true
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(password))
	if subtle.ConstantTimeCompare([]byte(stored), []byte(encoded)) == 1 {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
