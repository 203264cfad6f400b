package domain

import "time"

// DefaultTripColorHex is used when a booking references an unknown trip type.
const DefaultTripColorHex = "#6B7280"

// TripType is a categorical tag on bookings (Private, Shared, Sunset, ...)
// carrying the display color resolved at booking-write time.
type TripType struct {
	Type        string    `json:"type"`
	Label       string    `json:"label"`
	HexColor    string    `json:"hexColor"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
