package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as a {"message": ...} envelope.
// Unexpected errors stay a generic 500; they are fatal to the request only.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
