package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/classfit/class-booking/internal/auth"
	"github.com/classfit/class-booking/internal/dto"
	"github.com/classfit/class-booking/internal/middleware"
	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type ClassHandler struct {
	svc service.ClassService
}

func NewClassHandler(svc service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

func (h *ClassHandler) RegisterRoutes(e *echo.Echo, jwt *auth.JWTManager) {
	e.POST("/classes", h.CreateClass, middleware.RequireAuth(jwt), middleware.RequireRole(models.RoleInstructor))
	e.GET("/classes", h.ListUpcoming)
}

func (h *ClassHandler) CreateClass(c echo.Context) error {
	var req dto.CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.StartsAt.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "name and starts_at are required")
	}

	claims := middleware.GetClaims(c)
	instructor := req.Instructor
	if instructor == "" {
		instructor = claims.Subject
	}

	class := &models.Class{
		Name:         req.Name,
		StartsAt:     req.StartsAt,
		InstructorID: claims.UserID,
		Instructor:   instructor,
		Capacity:     req.Capacity,
	}

	if err := h.svc.CreateClass(c.Request().Context(), class); err != nil {
		if errors.Is(err, service.ErrInvalidCapacity) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.CreateClassResponse{
		Message: "Class created successfully",
		ClassID: class.ID,
	})
}

func (h *ClassHandler) ListUpcoming(c echo.Context) error {
	classes, err := h.svc.ListUpcoming(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}

	resp := make([]dto.ClassResponse, len(classes))
	for i, cls := range classes {
		resp[i] = dto.ToClassResponse(&cls)
	}
	return c.JSON(http.StatusOK, resp)
}
