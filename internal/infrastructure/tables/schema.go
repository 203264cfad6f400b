// Package tables maps the named tables of the backing store to the typed
// records in domain. Column order is a serialization detail that lives here
// and nowhere else.
package tables

import "github.com/zanzibarboats/booking-system/internal/core/ports"

const (
	TableBookings  = "Bookings"
	TableUsers     = "Users"
	TableBoats     = "Boats"
	TableTripTypes = "TripTypes"
)

// Header rows, fixed at table creation time.
var (
	BookingHeaders = ports.Row{
		"BookingID", "Date", "Boat", "TripType", "TripColorHex", "Status",
		"Clients", "Phone", "Adults", "Children", "ChildAges", "TotalPAX",
		"Payment", "Paid", "Commission", "Partner", "Driver", "Hotel",
		"Transfer", "TransferTime", "Comments", "IsArchived", "CreatedAt", "UpdatedAt",
	}
	UserHeaders = ports.Row{
		"ID", "Name", "Email", "Password", "Role", "AccessBoats", "Permissions",
		"Phone", "IsActive", "LastLoginAt", "CreatedAt",
	}
	BoatHeaders = ports.Row{
		"ID", "Name", "ColorLabel", "ColorHex", "MaxCapacity", "Managers",
		"TripTypesAllowed", "IsActive", "CreatedAt",
	}
	TripTypeHeaders = ports.Row{
		"Type", "Label", "HexColor", "Description", "IsActive", "CreatedAt",
	}
)

// Headers returns the canonical header row for every known table, keyed by
// table name. Used by the store bootstrap.
func Headers() map[string]ports.Row {
	return map[string]ports.Row{
		TableBookings:  BookingHeaders,
		TableUsers:     UserHeaders,
		TableBoats:     BoatHeaders,
		TableTripTypes: TripTypeHeaders,
	}
}

// Column positions. These must agree with the header slices above.
const (
	colBookingID = iota
	colBookingDate
	colBookingBoat
	colBookingTripType
	colBookingTripColorHex
	colBookingStatus
	colBookingClients
	colBookingPhone
	colBookingAdults
	colBookingChildren
	colBookingChildAges
	colBookingTotalPax
	colBookingPayment
	colBookingPaid
	colBookingCommission
	colBookingPartner
	colBookingDriver
	colBookingHotel
	colBookingTransfer
	colBookingTransferTime
	colBookingComments
	colBookingIsArchived
	colBookingCreatedAt
	colBookingUpdatedAt
)

const (
	colUserID = iota
	colUserName
	colUserEmail
	colUserPassword
	colUserRole
	colUserAccessBoats
	colUserPermissions
	colUserPhone
	colUserIsActive
	colUserLastLoginAt
	colUserCreatedAt
)

const (
	colBoatID = iota
	colBoatName
	colBoatColorLabel
	colBoatColorHex
	colBoatMaxCapacity
	colBoatManagers
	colBoatTripTypesAllowed
	colBoatIsActive
	colBoatCreatedAt
)

const (
	colTripTypeType = iota
	colTripTypeLabel
	colTripTypeHexColor
	colTripTypeDescription
	colTripTypeIsActive
	colTripTypeCreatedAt
)
