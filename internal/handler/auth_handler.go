package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/classfit/class-booking/internal/dto"
	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username, email, password and role are required")
	}

	user, err := h.svc.Signup(c.Request().Context(), req.Username, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrInvalidRole),
			errors.Is(err, service.ErrInvalidEmail):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	token, expiresAt, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	})
}
