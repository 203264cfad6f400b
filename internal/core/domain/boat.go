package domain

import "time"

// Boat is a vessel the operation runs tours on. Bookings reference boats by
// Name; access lists reference them by ID.
type Boat struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ColorLabel       string    `json:"colorLabel"`
	ColorHex         string    `json:"colorHex"`
	MaxCapacity      int       `json:"maxCapacity"`
	Managers         string    `json:"managers"`         // comma-separated manager emails
	TripTypesAllowed string    `json:"tripTypesAllowed"` // comma-separated trip type codes
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}
