package handler

import (
	"errors"
	"net/http"

	"github.com/classfit/class-booking/internal/auth"
	"github.com/classfit/class-booking/internal/dto"
	"github.com/classfit/class-booking/internal/middleware"
	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, jwt *auth.JWTManager) {
	e.POST("/book", h.Book, middleware.RequireAuth(jwt), middleware.RequireRole(models.RoleClient))
	e.GET("/bookings", h.ListBookings, middleware.RequireAuth(jwt), middleware.RequireRole(models.RoleClient))
}

func (h *BookingHandler) Book(c echo.Context) error {
	var req dto.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ClassID == 0 || req.ClientName == "" || req.ClientEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "class_id, client_name and client_email are required")
	}

	claims := middleware.GetClaims(c)

	booking, remaining, err := h.svc.Book(c.Request().Context(), req.ClassID, claims.UserID, req.ClientName, req.ClientEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotsExhausted):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookingConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, dto.BookResponse{
		Message:        "Slot booked successfully",
		BookingID:      booking.ID,
		RemainingSlots: remaining,
	})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	claims := middleware.GetClaims(c)

	bookings, err := h.svc.ListForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}
