package tables

import (
	"context"
	"fmt"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// UserRepository maps the Users table to domain.User records.
type UserRepository struct {
	store ports.TableStore
	cache ports.TableCache
}

func NewUserRepository(store ports.TableStore, cache ports.TableCache) *UserRepository {
	return &UserRepository{store: store, cache: cache}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.cache.GetTable(ctx, TableUsers)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range dataRows(rows) {
		users = append(users, userFromRow(row))
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, int, error) {
	rows, err := r.cache.GetTable(ctx, TableUsers)
	if err != nil {
		return nil, 0, fmt.Errorf("read users: %w", err)
	}
	for i, row := range dataRows(rows) {
		if cell(row, colUserID) == id {
			u := userFromRow(row)
			return &u, i, nil
		}
	}
	return nil, 0, domain.ErrUserNotFound
}

// FindByEmail matches exactly, case-sensitive.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, int, error) {
	rows, err := r.cache.GetTable(ctx, TableUsers)
	if err != nil {
		return nil, 0, fmt.Errorf("read users: %w", err)
	}
	for i, row := range dataRows(rows) {
		if cell(row, colUserEmail) == email {
			u := userFromRow(row)
			return &u, i, nil
		}
	}
	return nil, 0, domain.ErrUserNotFound
}

func (r *UserRepository) Append(ctx context.Context, u *domain.User) error {
	if err := r.store.AppendRow(ctx, TableUsers, userToRow(u)); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	r.cache.Invalidate(ctx, TableUsers)
	return nil
}

func (r *UserRepository) Replace(ctx context.Context, index int, u *domain.User) error {
	if err := r.store.WriteRow(ctx, TableUsers, index, userToRow(u)); err != nil {
		return fmt.Errorf("replace user: %w", err)
	}
	r.cache.Invalidate(ctx, TableUsers)
	return nil
}

func userFromRow(row ports.Row) domain.User {
	return domain.User{
		ID:          cell(row, colUserID),
		Name:        cell(row, colUserName),
		Email:       cell(row, colUserEmail),
		Password:    cell(row, colUserPassword),
		Role:        cell(row, colUserRole),
		AccessBoats: cell(row, colUserAccessBoats),
		Permissions: cell(row, colUserPermissions),
		Phone:       cell(row, colUserPhone),
		IsActive:    parseYesNo(cell(row, colUserIsActive)),
		LastLoginAt: parseTime(cell(row, colUserLastLoginAt)),
		CreatedAt:   parseTime(cell(row, colUserCreatedAt)),
	}
}

func userToRow(u *domain.User) ports.Row {
	row := make(ports.Row, len(UserHeaders))
	row[colUserID] = u.ID
	row[colUserName] = u.Name
	row[colUserEmail] = u.Email
	row[colUserPassword] = u.Password
	row[colUserRole] = u.Role
	row[colUserAccessBoats] = u.AccessBoats
	row[colUserPermissions] = u.Permissions
	row[colUserPhone] = u.Phone
	row[colUserIsActive] = yesNo(u.IsActive)
	row[colUserLastLoginAt] = formatTime(u.LastLoginAt)
	row[colUserCreatedAt] = formatTime(u.CreatedAt)
	return row
}
