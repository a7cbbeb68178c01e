package models

import "time"

type Booking struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	ClassID uint `gorm:"not null" json:"class_id"`
	// UserID is the authenticated booker. ClientName/ClientEmail are the
	// attendee as given in the request; they carry no authorization weight.
	UserID      uint      `gorm:"not null" json:"user_id"`
	ClientName  string    `gorm:"not null" json:"client_name"`
	ClientEmail string    `gorm:"not null" json:"client_email"`
	CreatedAt   time.Time `json:"created_at"`

	Class *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}
