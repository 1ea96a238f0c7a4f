package entity

import (
	"github.com/google/uuid"
)

type Notification struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	BookingID uuid.UUID `db:"booking_id"`
	Message   string    `db:"message"`
	Sent      bool      `db:"sent"`
}
