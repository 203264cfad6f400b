package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

func newUserService(users *stubUserRepo) *UserService {
	s := NewUserService(users, NewAccessControl(), zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 8, 9, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestUserCreate(t *testing.T) {
	users := &stubUserRepo{users: []domain.User{*adminUser()}}
	svc := newUserService(users)

	id, err := svc.Create(context.Background(), adminUser(), ports.UserInput{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "2" {
		t.Errorf("id = %q, want next numeric ID 2", id)
	}

	created := users.users[1]
	if created.Role != domain.RoleStaff {
		t.Errorf("role = %q, want default Staff", created.Role)
	}
	if created.Permissions != domain.PermView {
		t.Errorf("permissions = %q, want default view", created.Permissions)
	}
	if !created.IsActive {
		t.Error("new account must be active")
	}
	if created.Password == "s3cret" {
		t.Error("password must not be stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")); err != nil {
		t.Error("stored password is not a bcrypt hash of the input")
	}
}

func TestUserCreateRequiresPassword(t *testing.T) {
	svc := newUserService(&stubUserRepo{})
	_, err := svc.Create(context.Background(), adminUser(), ports.UserInput{Name: "A", Email: "a@b.c"})
	if !errors.Is(err, domain.ErrMissingPassword) {
		t.Errorf("err = %v, want ErrMissingPassword", err)
	}
}

func TestUserOperationsNeedAllPermission(t *testing.T) {
	svc := newUserService(&stubUserRepo{users: []domain.User{*adminUser()}})
	caller := staffUser("*", "view, edit")
	ctx := context.Background()

	if _, err := svc.List(ctx, caller); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("List: err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Create(ctx, caller, ports.UserInput{Password: "x"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Create: err = %v, want ErrUnauthorized", err)
	}
	if err := svc.Deactivate(ctx, caller, "1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Deactivate: err = %v, want ErrUnauthorized", err)
	}
}

func TestUserListSanitizesAndFiltersInactive(t *testing.T) {
	users := &stubUserRepo{users: []domain.User{
		*adminUser(),
		{ID: "2", Email: "old@example.com", Password: "hash", IsActive: false},
	}}
	svc := newUserService(users)

	got, err := svc.List(context.Background(), adminUser())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d users, want 1 active", len(got))
	}
	if got[0].Password != "" {
		t.Error("listed users must be sanitized")
	}
}

func TestUserDeactivateKeepsRow(t *testing.T) {
	users := &stubUserRepo{users: []domain.User{*adminUser(), {ID: "2", Email: "x@y.z", IsActive: true}}}
	svc := newUserService(users)

	if err := svc.Deactivate(context.Background(), adminUser(), "2"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if len(users.users) != 2 {
		t.Fatal("deactivate must not remove the row")
	}
	if users.users[1].IsActive {
		t.Error("active flag not cleared")
	}
}

func TestUserUpdateConditionalFields(t *testing.T) {
	users := &stubUserRepo{users: []domain.User{{
		ID: "1", Name: "Old", Email: "old@example.com",
		Role: domain.RoleStaff, AccessBoats: "1", Permissions: "view",
		Password: "keepme", IsActive: true,
	}}}
	svc := newUserService(users)

	err := svc.Update(context.Background(), adminUser(), "1", ports.UserInput{
		Name:  "New",
		Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	u := users.users[0]
	if u.Name != "New" || u.Email != "new@example.com" {
		t.Error("name and email should always be replaced")
	}
	if u.Role != domain.RoleStaff || u.AccessBoats != "1" || u.Permissions != "view" {
		t.Error("empty role/access/permissions must keep existing values")
	}
	if u.Password != "keepme" {
		t.Error("empty password must keep the stored credential")
	}
}

func TestNextNumericID(t *testing.T) {
	tests := []struct {
		ids  []string
		want string
	}{
		{nil, "1"},
		{[]string{"1", "2", "7"}, "8"},
		{[]string{"3", "BOOK-X", ""}, "4"},
		{[]string{"abc"}, "1"},
	}
	for _, tt := range tests {
		if got := nextNumericID(tt.ids); got != tt.want {
			t.Errorf("nextNumericID(%v) = %q, want %q", tt.ids, got, tt.want)
		}
	}
}
