package models

import "time"

type Class struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	StartsAt     time.Time `gorm:"not null" json:"starts_at"`
	InstructorID uint      `gorm:"not null" json:"instructor_id"`
	Instructor   string    `gorm:"not null" json:"instructor"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	// AvailableSlots starts at Capacity and is decremented only inside the
	// booking transaction while the row is locked. 0 <= AvailableSlots <= Capacity.
	AvailableSlots int       `gorm:"not null" json:"available_slots"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
