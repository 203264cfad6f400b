package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// UserService manages user accounts. Every operation is gated on the "all"
// permission, which admins hold implicitly.
type UserService struct {
	users  ports.UserRepository
	access *AccessControl
	now    func() time.Time
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, access *AccessControl, logger zerolog.Logger) *UserService {
	return &UserService{users: users, access: access, now: time.Now, logger: logger}
}

// List returns active users, sanitized.
func (s *UserService) List(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return nil, domain.ErrUnauthorized
	}
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.User, 0, len(all))
	for _, u := range all {
		if u.IsActive {
			active = append(active, *u.Sanitized())
		}
	}
	return active, nil
}

func (s *UserService) Create(ctx context.Context, caller *domain.User, in ports.UserInput) (string, error) {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return "", domain.ErrUnauthorized
	}
	if in.Password == "" {
		return "", domain.ErrMissingPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	all, err := s.users.List(ctx)
	if err != nil {
		return "", err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleStaff
	}
	permissions := in.Permissions
	if permissions == "" {
		permissions = domain.PermView
	}

	user := &domain.User{
		ID:          nextNumericID(userIDs(all)),
		Name:        in.Name,
		Email:       in.Email,
		Password:    string(hash),
		Role:        role,
		AccessBoats: in.AccessBoats,
		Permissions: permissions,
		Phone:       in.Phone,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.users.Append(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return "", err
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user.ID, nil
}

func (s *UserService) Update(ctx context.Context, caller *domain.User, id string, in ports.UserInput) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	if in.Role != "" {
		existing.Role = in.Role
	}
	if in.AccessBoats != "" {
		existing.AccessBoats = in.AccessBoats
	}
	if in.Permissions != "" {
		existing.Permissions = in.Permissions
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		existing.Password = string(hash)
	}

	if err := s.users.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return nil
}

// Deactivate is the soft delete: the active flag goes to No, the row stays.
func (s *UserService) Deactivate(ctx context.Context, caller *domain.User, id string) error {
	if !s.access.HasPermission(caller, domain.PermAll) {
		return domain.ErrUnauthorized
	}

	existing, index, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	existing.IsActive = false
	if err := s.users.Replace(ctx, index, existing); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to deactivate user")
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}

func userIDs(users []domain.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// nextNumericID returns one past the highest numeric ID seen, starting at 1.
// Non-numeric IDs are ignored.
func nextNumericID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
