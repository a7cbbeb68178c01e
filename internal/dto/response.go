package dto

import (
	"time"

	"github.com/classfit/class-booking/internal/models"
)

type UserResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type ClassResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	StartsAt       time.Time `json:"starts_at"`
	Instructor     string    `json:"instructor"`
	Capacity       int       `json:"capacity"`
	AvailableSlots int       `json:"available_slots"`
}

type CreateClassResponse struct {
	Message string `json:"message"`
	ClassID uint   `json:"class_id"`
}

type BookResponse struct {
	Message        string `json:"message"`
	BookingID      uint   `json:"booking_id"`
	RemainingSlots int    `json:"remaining_slots"`
}

type BookingResponse struct {
	ID          uint   `json:"id"`
	ClassID     uint   `json:"class_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func ToClassResponse(c *models.Class) ClassResponse {
	return ClassResponse{
		ID:             c.ID,
		Name:           c.Name,
		StartsAt:       c.StartsAt,
		Instructor:     c.Instructor,
		Capacity:       c.Capacity,
		AvailableSlots: c.AvailableSlots,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ClassID:     b.ClassID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
	}
}
