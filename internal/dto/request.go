package dto

import "time"

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=instructor client"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateClassRequest struct {
	Name     string    `json:"name" validate:"required"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	// Instructor is the display name shown in listings; defaults to the
	// authenticated instructor's email when empty.
	Instructor string `json:"instructor"`
	Capacity   int    `json:"capacity" validate:"gte=0"`
}

type BookRequest struct {
	ClassID     uint   `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
}
