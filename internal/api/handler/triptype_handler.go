package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// TripTypeHandler handles HTTP requests for trip type configuration.
type TripTypeHandler struct {
	service ports.TripTypeService
}

func NewTripTypeHandler(service ports.TripTypeService) *TripTypeHandler {
	return &TripTypeHandler{service: service}
}

// List handles GET /v1/trip-types. No authentication required; booking forms
// need the active list before login.
//
// @Summary      List active trip types
// @Tags         trip-types
// @Produce      json
// @Success      200  {object}  apiResponse
// @Router       /v1/trip-types [get]
func (h *TripTypeHandler) List(c echo.Context) error {
	tripTypes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse(tripTypes))
}

// Create handles POST /v1/trip-types.
//
// @Summary      Create a trip type
// @Tags         trip-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tripTypeRequest  true  "Trip type details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /v1/trip-types [post]
func (h *TripTypeHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req tripTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Create(c.Request().Context(), caller, tripTypeInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okResponse())
}

// Update handles PUT /v1/trip-types/:type.
//
// @Summary      Update a trip type
// @Tags         trip-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string           true  "Trip type code"
// @Param        body  body      tripTypeRequest  true  "Trip type details"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /v1/trip-types/{type} [put]
func (h *TripTypeHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req tripTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), caller, c.Param("type"), tripTypeInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse())
}

// Deactivate handles DELETE /v1/trip-types/:type.
//
// @Summary      Deactivate a trip type
// @Tags         trip-types
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string  true  "Trip type code"
// @Success      200   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /v1/trip-types/{type} [delete]
func (h *TripTypeHandler) Deactivate(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), caller, c.Param("type")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse())
}

func tripTypeInput(req tripTypeRequest) ports.TripTypeInput {
	return ports.TripTypeInput{
		Type:        req.Type,
		Label:       req.Label,
		HexColor:    req.HexColor,
		Description: req.Description,
	}
}
