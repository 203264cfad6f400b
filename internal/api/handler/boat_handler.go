package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// BoatHandler handles HTTP requests for fleet management.
type BoatHandler struct {
	service ports.BoatService
}

func NewBoatHandler(service ports.BoatService) *BoatHandler {
	return &BoatHandler{service: service}
}

// List handles GET /v1/boats.
//
// @Summary      List boats visible to the caller
// @Tags         boats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Router       /v1/boats [get]
func (h *BoatHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	boats, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse(boats))
}

// Create handles POST /v1/boats.
//
// @Summary      Add a boat to the fleet
// @Tags         boats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      boatRequest  true  "Boat details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /v1/boats [post]
func (h *BoatHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req boatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), caller, boatInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, apiResponse{Success: true, ID: id})
}

// Update handles PUT /v1/boats/:id.
//
// @Summary      Update a boat
// @Tags         boats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Boat ID"
// @Param        body  body      boatRequest  true  "Boat details"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /v1/boats/{id} [put]
func (h *BoatHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req boatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), caller, c.Param("id"), boatInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse())
}

// Deactivate handles DELETE /v1/boats/:id.
//
// @Summary      Deactivate a boat
// @Tags         boats
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Boat ID"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /v1/boats/{id} [delete]
func (h *BoatHandler) Deactivate(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse())
}

func boatInput(req boatRequest) ports.BoatInput {
	return ports.BoatInput{
		Name:             req.Name,
		ColorLabel:       req.ColorLabel,
		ColorHex:         req.ColorHex,
		MaxCapacity:      req.MaxCapacity,
		Managers:         req.Managers,
		TripTypesAllowed: req.TripTypesAllowed,
	}
}
