package middleware

import (
	"net/http"
	"strings"

	"github.com/classfit/class-booking/internal/auth"
	"github.com/classfit/class-booking/internal/models"
	"github.com/labstack/echo/v4"
)

// ClaimsContextKey is where validated claims are stored on the echo context.
const ClaimsContextKey = "claims"

// RequireAuth validates the bearer token and stores the claims on the
// context. Missing header, bad signature, missing claims and expiry all
// produce the same 401.
func RequireAuth(jwt *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := jwt.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route to one role. 403 means the caller is known but
// not permitted, distinct from the 401s above. Must run after RequireAuth.
func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "only "+string(role)+"s can perform this action")
			}
			return next(c)
		}
	}
}

// GetClaims returns the validated claims set by RequireAuth, or nil.
func GetClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsContextKey).(*auth.Claims)
	return claims
}
