package response

import (
	"car-rental/internal/timeline"
)

type TimelineResponse struct {
	WindowStart string            `json:"window_start"`
	WindowDays  int               `json:"window_days"`
	Bookings    []BookingResponse `json:"bookings"`
	Bars        []timeline.Bar    `json:"bars"`
}
