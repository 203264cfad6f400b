package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
)

// userContextKey is where the Auth middleware stores the resolved account.
const userContextKey = "current_user"

// currentUser extracts the account injected by the Auth middleware. Presence
// proves the middleware ran; its absence on a protected route is a wiring
// bug, answered with 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(userContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
