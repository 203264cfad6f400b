package handler

import "github.com/zanzibarboats/booking-system/internal/core/domain"

// apiResponse is the uniform envelope every endpoint returns. Success reports
// whether the operation took effect; the remaining fields are filled per
// operation and omitted when empty.
type apiResponse struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	ID      string       `json:"id,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

func okResponse() apiResponse {
	return apiResponse{Success: true}
}

func dataResponse(data any) apiResponse {
	return apiResponse{Success: true, Data: data}
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type bookingRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Boat         string `json:"boat" validate:"required"`
	TripType     string `json:"tripType" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=Confirmed Pending Cancelled"`
	Clients      string `json:"clients" validate:"required"`
	Phone        string `json:"phone"`
	Adults       int    `json:"adults" validate:"min=0"`
	Children     int    `json:"children" validate:"min=0"`
	ChildAges    string `json:"childAges"`
	TotalPax     int    `json:"totalPax" validate:"min=0"`
	Payment      string `json:"payment"`
	Paid         string `json:"paid"`
	Commission   string `json:"commission"`
	Partner      string `json:"partner"`
	Driver       string `json:"driver"`
	Hotel        string `json:"hotel"`
	Transfer     bool   `json:"transfer"`
	TransferTime string `json:"transferTime"`
	Comments     string `json:"comments"`
}

type userRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password"`
	Role        string `json:"role" validate:"omitempty,oneof=Admin Staff Driver"`
	AccessBoats string `json:"accessBoats"`
	Permissions string `json:"permissions"`
	Phone       string `json:"phone"`
}

type boatRequest struct {
	Name             string `json:"name" validate:"required"`
	ColorLabel       string `json:"colorLabel"`
	ColorHex         string `json:"colorHex" validate:"omitempty,hexcolor"`
	MaxCapacity      int    `json:"maxCapacity" validate:"min=0"`
	Managers         string `json:"managers"`
	TripTypesAllowed string `json:"tripTypesAllowed"`
}

type tripTypeRequest struct {
	Type        string `json:"type" validate:"required"`
	Label       string `json:"label" validate:"required"`
	HexColor    string `json:"hexColor" validate:"omitempty,hexcolor"`
	Description string `json:"description"`
}
