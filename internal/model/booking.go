package model

import "time"

// Booking is the read-only snapshot of a special-room booking.
type Booking struct {
	ID        string    `gorm:"primaryKey;size:13"` // citizen id used as booking number
	FullName  string    `gorm:"size:256;not null"`
	Building  string    `gorm:"size:256;not null"`
	Status    string    `gorm:"size:64;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
