package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Message   string    `json:"message"`
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		BookingID: n.BookingID.String(),
		Message:   n.Message,
		Sent:      n.Sent,
		CreatedAt: n.CreatedAt,
	}
}
