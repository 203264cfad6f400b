package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusPending   BookingStatus = "Pending"
	StatusCancelled BookingStatus = "Cancelled"
)

// Booking is the core aggregate root. The trip color is denormalized from the
// trip type at write time so a later palette change never rewrites history.
type Booking struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"` // calendar date, YYYY-MM-DD
	Boat         string        `json:"boat"` // joins to Boat.Name
	TripType     string        `json:"tripType"`
	TripColorHex string        `json:"tripColorHex"`
	Status       BookingStatus `json:"status"`
	Clients      string        `json:"clients"`
	Phone        string        `json:"phone,omitempty"`
	Adults       int           `json:"adults"`
	Children     int           `json:"children"`
	ChildAges    string        `json:"childAges,omitempty"`
	TotalPax     int           `json:"totalPax"`
	Payment      string        `json:"payment,omitempty"`
	Paid         string        `json:"paid,omitempty"`
	Commission   string        `json:"commission,omitempty"`
	Partner      string        `json:"partner,omitempty"`
	Driver       string        `json:"driver,omitempty"`
	Hotel        string        `json:"hotel,omitempty"`
	Transfer     bool          `json:"transfer"`
	TransferTime string        `json:"transferTime,omitempty"`
	Comments     string        `json:"comments,omitempty"`
	IsArchived   bool          `json:"isArchived"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
