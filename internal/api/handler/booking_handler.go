package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /v1/bookings.
//
// @Summary      List bookings visible to the caller
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse(bookings))
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookingRequest  true  "Booking details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), caller, bookingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, apiResponse{Success: true, ID: id})
}

// Update handles PUT /v1/bookings/:id.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Booking ID"
// @Param        body  body      bookingRequest  true  "Booking details"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /v1/bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), caller, c.Param("id"), bookingInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse())
}

// Archive handles DELETE /v1/bookings/:id. The row is flagged, never removed.
//
// @Summary      Archive a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking ID"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /v1/bookings/{id} [delete]
func (h *BookingHandler) Archive(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Archive(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse())
}

func bookingInput(req bookingRequest) ports.BookingInput {
	return ports.BookingInput{
		Date:         req.Date,
		Boat:         req.Boat,
		TripType:     req.TripType,
		Status:       req.Status,
		Clients:      req.Clients,
		Phone:        req.Phone,
		Adults:       req.Adults,
		Children:     req.Children,
		ChildAges:    req.ChildAges,
		TotalPax:     req.TotalPax,
		Payment:      req.Payment,
		Paid:         req.Paid,
		Commission:   req.Commission,
		Partner:      req.Partner,
		Driver:       req.Driver,
		Hotel:        req.Hotel,
		Transfer:     req.Transfer,
		TransferTime: req.TransferTime,
		Comments:     req.Comments,
	}
}
