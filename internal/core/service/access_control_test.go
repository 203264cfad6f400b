package service

import (
	"testing"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

func TestHasPermission(t *testing.T) {
	access := NewAccessControl()

	tests := []struct {
		name  string
		user  *domain.User
		token string
		want  bool
	}{
		{"nil user", nil, domain.PermView, false},
		{"admin passes without tokens", adminUser(), domain.PermEdit, true},
		{"admin with empty permission list", &domain.User{Role: domain.RoleAdmin}, domain.PermAll, true},
		{"exact token", staffUser("1", "view"), domain.PermView, true},
		{"token case insensitive", staffUser("1", "View, EDIT"), domain.PermEdit, true},
		{"all grants everything", staffUser("1", "all"), domain.PermEdit, true},
		{"all is case insensitive", staffUser("1", "ALL"), domain.PermView, true},
		{"missing token", staffUser("1", "view"), domain.PermEdit, false},
		{"empty permission list", staffUser("1", ""), domain.PermView, false},
		{"whitespace-padded list", staffUser("1", " view , edit "), domain.PermEdit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := access.HasPermission(tt.user, tt.token); got != tt.want {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", describe(tt.user), tt.token, got, tt.want)
			}
		})
	}
}

func TestScopedBoatIDs(t *testing.T) {
	access := NewAccessControl()

	t.Run("admin is unrestricted", func(t *testing.T) {
		scope := access.ScopedBoatIDs(adminUser())
		if !scope.All {
			t.Fatal("expected unrestricted scope for admin")
		}
	})

	t.Run("star sentinel is unrestricted", func(t *testing.T) {
		scope := access.ScopedBoatIDs(staffUser("*", "view"))
		if !scope.All {
			t.Fatal("expected unrestricted scope for * sentinel")
		}
	})

	t.Run("star must be the whole token", func(t *testing.T) {
		scope := access.ScopedBoatIDs(staffUser("*T", "view"))
		if scope.All {
			t.Fatal("token containing * must not grant unrestricted scope")
		}
		if !scope.Contains("*T") {
			t.Error("literal token should still be in the ID set")
		}
	})

	t.Run("enumerated IDs", func(t *testing.T) {
		scope := access.ScopedBoatIDs(staffUser("1, 3", "view"))
		if scope.All {
			t.Fatal("expected restricted scope")
		}
		if !scope.Contains("1") || !scope.Contains("3") {
			t.Error("listed IDs should be in scope")
		}
		if scope.Contains("2") {
			t.Error("unlisted ID should be out of scope")
		}
	})

	t.Run("empty list covers nothing", func(t *testing.T) {
		scope := access.ScopedBoatIDs(staffUser("", "view"))
		if scope.All || scope.Contains("1") {
			t.Error("empty access list must not cover any boat")
		}
	})
}

func TestAuthorizeBoatAccess(t *testing.T) {
	access := NewAccessControl()
	nameToID := map[string]string{"MAYA": "1", "PEARL": "2"}

	if !access.AuthorizeBoatAccess(adminUser(), "UNKNOWN", nameToID) {
		t.Error("admin should pass even for unknown boats")
	}
	if !access.AuthorizeBoatAccess(staffUser("1", "edit"), "MAYA", nameToID) {
		t.Error("user scoped to boat 1 should reach MAYA")
	}
	if access.AuthorizeBoatAccess(staffUser("1", "edit"), "PEARL", nameToID) {
		t.Error("user scoped to boat 1 must not reach PEARL")
	}
	if access.AuthorizeBoatAccess(staffUser("1", "edit"), "GHOST", nameToID) {
		t.Error("unknown boat name must fail for non-admins")
	}
	if !access.AuthorizeBoatAccess(staffUser("*", "edit"), "GHOST", nameToID) {
		t.Error("* sentinel should cover boats missing from the lookup")
	}
}

func describe(u *domain.User) string {
	if u == nil {
		return "<nil>"
	}
	return u.Role + "/" + u.Permissions
}
