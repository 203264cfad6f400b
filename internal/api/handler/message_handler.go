package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// MessageHandler handles HTTP requests for dispatch message rendering. Any
// authenticated user may read the messages; no permission token is required.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Driver handles GET /v1/messages/driver?date=YYYY-MM-DD.
//
// @Summary      Render the driver pickup message for a date
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /v1/messages/driver [get]
func (h *MessageHandler) Driver(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	text, err := h.service.DriverMessage(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: text})
}

// Staff handles GET /v1/messages/staff?date=YYYY-MM-DD.
//
// @Summary      Render the staff day summary for a date
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /v1/messages/staff [get]
func (h *MessageHandler) Staff(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	text, err := h.service.StaffMessage(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: text})
}
