package domain

import (
	"time"

	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking запись на услугу лагеря
// Создается внешней системой, здесь используется только для чтения
type Booking struct {
	ID              int64
	ServiceID       int64
	ServiceName     string
	Date            time.Time
	TimeSlot        types.TimeString
	LastName        string
	FirstName       string
	Phone           string
	Camp            string
	Status          BookingStatus
	ReferenceNumber string
	CreatedAt       time.Time
}

// IsConfirmed returns true if the booking is active
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}
