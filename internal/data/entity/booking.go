package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// ValidBookingStatus reports whether s is one of the four known
// status values.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type RideType string

const (
	RideTypeSolo        RideType = "solo"
	RideTypeChauffeured RideType = "chauffeured"
)

type Booking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	CarID       uuid.UUID     `db:"car_id"`
	StartDate   time.Time     `db:"start_date"`
	EndDate     time.Time     `db:"end_date"`
	TotalAmount float64       `db:"total_amount"`
	PaidAmount  float64       `db:"paid_amount"`
	RideType    RideType      `db:"ride_type"`
	Status      BookingStatus `db:"status"`
}

// BookingDetail is a booking row with its car and user expanded.
type BookingDetail struct {
	Booking
	Car  *Car
	User *User
}
