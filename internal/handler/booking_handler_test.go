package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/classfit/class-booking/internal/auth"
	"github.com/classfit/class-booking/internal/dto"
	"github.com/classfit/class-booking/internal/middleware"
	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock BookingService ---

type mockBookingService struct {
	bookFn func(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error)
	listFn func(ctx context.Context, userID uint) ([]models.Booking, error)
}

func (m *mockBookingService) Book(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
	return m.bookFn(ctx, classID, userID, clientName, clientEmail)
}
func (m *mockBookingService) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}

func clientClaims() *auth.Claims {
	return &auth.Claims{
		UserID: 5,
		Role:   models.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jane@example.com",
		},
	}
}

// --- Tests ---

func TestBook_Handler_Success(t *testing.T) {
	var bookedBy uint
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
			bookedBy = userID
			return &models.Booking{ID: 11, ClassID: classID, UserID: userID, ClientName: clientName, ClientEmail: clientEmail}, 4, nil
		},
	}

	e := echo.New()
	c, rec := postJSON(e, "/book", `{"class_id":1,"client_name":"Jane","client_email":"jane@example.com"}`)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(svc).Book(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(11), resp.BookingID)
	assert.Equal(t, 4, resp.RemainingSlots)
	assert.Equal(t, uint(5), bookedBy, "booking tied to authenticated caller")
}

func TestBook_Handler_ClassNotFound(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
			return nil, 0, service.ErrClassNotFound
		},
	}

	e := echo.New()
	c, _ := postJSON(e, "/book", `{"class_id":999,"client_name":"Jane","client_email":"jane@example.com"}`)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(svc).Book(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestBook_Handler_SlotsExhausted(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
			return nil, 0, service.ErrSlotsExhausted
		},
	}

	e := echo.New()
	c, _ := postJSON(e, "/book", `{"class_id":1,"client_name":"Jane","client_email":"jane@example.com"}`)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(svc).Book(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestBook_Handler_Conflict(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
			return nil, 0, service.ErrBookingConflict
		},
	}

	e := echo.New()
	c, _ := postJSON(e, "/book", `{"class_id":1,"client_name":"Jane","client_email":"jane@example.com"}`)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(svc).Book(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestBook_Handler_MissingFields(t *testing.T) {
	e := echo.New()
	c, _ := postJSON(e, "/book", `{"class_id":1}`)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(&mockBookingService{}).Book(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListBookings_Handler_FiltersByCaller(t *testing.T) {
	var requestedUser uint
	svc := &mockBookingService{
		listFn: func(ctx context.Context, userID uint) ([]models.Booking, error) {
			requestedUser = userID
			return []models.Booking{
				{ID: 1, ClassID: 1, UserID: userID, ClientName: "Jane", ClientEmail: "jane@example.com"},
				{ID: 2, ClassID: 3, UserID: userID, ClientName: "Jane", ClientEmail: "jane@example.com"},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(svc).ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(5), requestedUser)

	var resp []dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestBook_Handler_InternalErrorMasked(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
			return nil, 0, errors.New(`insert booking: ERROR: relation "bookings" does not exist (SQLSTATE 42P01)`)
		},
	}

	e := echo.New()
	c, rec := postJSON(e, "/book", `{"class_id":1,"client_name":"Jane","client_email":"jane@example.com"}`)
	c.Set(middleware.ClaimsContextKey, clientClaims())

	err := NewBookingHandler(svc).Book(c)

	assert.Error(t, err)
	_, isHTTP := err.(*echo.HTTPError)
	assert.False(t, isHTTP, "unexpected errors pass through untouched for the central handler")

	middleware.ErrorHandler(err, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "SQLSTATE")
	assert.NotContains(t, rec.Body.String(), "bookings")
}
