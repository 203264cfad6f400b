package service

import (
	"strings"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// AccessControl is the single authority for permission and boat-scope
// decisions. Repositories and services call it instead of re-parsing the
// comma-separated lists at call sites.
type AccessControl struct{}

func NewAccessControl() *AccessControl {
	return &AccessControl{}
}

// HasPermission reports whether the user may exercise the given token.
// Admins pass unconditionally; everyone else needs the token (case
// insensitive) or the "all" grant in their permission list. A nil user
// never passes.
func (a *AccessControl) HasPermission(user *domain.User, token string) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	for _, p := range splitList(user.Permissions) {
		if strings.EqualFold(p, domain.PermAll) || strings.EqualFold(p, token) {
			return true
		}
	}
	return false
}

// BoatScope is the parsed access-boat list. All set means unrestricted; the
// sentinel is never enumerated into IDs.
type BoatScope struct {
	All bool
	IDs map[string]struct{}
}

// Contains reports whether the scope covers the given boat ID.
func (s BoatScope) Contains(boatID string) bool {
	if s.All {
		return true
	}
	_, ok := s.IDs[boatID]
	return ok
}

// ScopedBoatIDs parses the user's access list. Admins and the "*" sentinel
// yield an unrestricted scope.
func (a *AccessControl) ScopedBoatIDs(user *domain.User) BoatScope {
	scope := BoatScope{IDs: make(map[string]struct{})}
	if user == nil {
		return scope
	}
	if user.IsAdmin() {
		scope.All = true
		return scope
	}
	for _, id := range splitList(user.AccessBoats) {
		if id == domain.AllBoats {
			scope.All = true
			return scope
		}
		scope.IDs[id] = struct{}{}
	}
	return scope
}

// AuthorizeBoatAccess reports whether the user may touch bookings on the
// named boat. The lookup maps boat names to IDs; an unknown boat name fails
// for everyone but admins.
func (a *AccessControl) AuthorizeBoatAccess(user *domain.User, boatName string, nameToID map[string]string) bool {
	if user.IsAdmin() {
		return true
	}
	scope := a.ScopedBoatIDs(user)
	if scope.All {
		return true
	}
	id, ok := nameToID[boatName]
	if !ok {
		return false
	}
	return scope.Contains(id)
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
