// Package timeline lays bookings out on a linear day axis for the
// admin availability view. It is a pure function of already-fetched
// bookings: no I/O, no mutation.
package timeline

import (
	"strings"
	"time"

	"car-rental/internal/data/entity"

	"github.com/google/uuid"
)

const (
	// DefaultWindowDays is the window rendered when no booking
	// occupies the calendar.
	DefaultWindowDays = 15
	// MinWindowDays and MaxWindowDays clamp the natural span of the
	// displayed bookings.
	MinWindowDays = 7
	MaxWindowDays = 120
)

// occupancyStatuses are the statuses that hold a calendar slot.
// PENDING is treated as processing.
var occupancyStatuses = map[string]bool{
	"CONFIRMED":  true,
	"PROCESSING": true,
	"PENDING":    true,
}

// Bar is the rendered geometry for one booking: a zero-based day
// offset from the window start and a width in whole days.
type Bar struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CarID      uuid.UUID `json:"car_id"`
	OffsetDays int       `json:"offset_days"`
	WidthDays  int       `json:"width_days"`
	Confirmed  bool      `json:"confirmed"`
}

// Result is the window plus per-booking geometry. Entries holds every
// occupying booking for the list column, including those whose bar
// falls outside the clamped window.
type Result struct {
	Start   time.Time
	Days    int
	Entries []*entity.BookingDetail
	Bars    []Bar
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours()/24 + 0.5)
}

// Occupies reports whether a booking with the given status holds a
// calendar slot. Comparison is case-insensitive.
func Occupies(status entity.BookingStatus) bool {
	return occupancyStatuses[strings.ToUpper(string(status))]
}

// Build filters bookings to the occupancy statuses (optionally to a
// single car), computes the display window and the per-booking bars.
func Build(bookings []*entity.BookingDetail, carID uuid.UUID, today time.Time) *Result {
	var filtered []*entity.BookingDetail
	for _, b := range bookings {
		if !Occupies(b.Status) {
			continue
		}
		if carID != uuid.Nil && b.CarID != carID {
			continue
		}
		filtered = append(filtered, b)
	}

	if len(filtered) == 0 {
		return &Result{
			Start:   startOfDay(today),
			Days:    DefaultWindowDays,
			Entries: nil,
			Bars:    nil,
		}
	}

	min := startOfDay(filtered[0].StartDate)
	max := startOfDay(filtered[0].EndDate)
	for _, b := range filtered {
		s := startOfDay(b.StartDate)
		e := startOfDay(b.EndDate)
		if s.Before(min) {
			min = s
		}
		if e.After(max) {
			max = e
		}
	}

	// Clamp the natural span; the window never starts later than the
	// earliest booking, only the end moves.
	rawDays := daysBetween(min, max) + 1
	days := rawDays
	if days < MinWindowDays {
		days = MinWindowDays
	}
	if days > MaxWindowDays {
		days = MaxWindowDays
	}

	bars := make([]Bar, 0, len(filtered))
	for _, b := range filtered {
		s := startOfDay(b.StartDate)
		e := startOfDay(b.EndDate)

		offset := daysBetween(min, s)
		if offset < 0 {
			offset = 0
		}

		// duration inclusive of both endpoints
		width := daysBetween(s, e) + 1
		if width < 1 {
			width = 1
		}
		if offset+width > days {
			width = days - offset
		}
		if width <= 0 {
			// outside the clamped window: listed, not rendered
			continue
		}

		bars = append(bars, Bar{
			BookingID:  b.ID,
			CarID:      b.CarID,
			OffsetDays: offset,
			WidthDays:  width,
			Confirmed:  strings.EqualFold(string(b.Status), "CONFIRMED"),
		})
	}

	return &Result{
		Start:   min,
		Days:    days,
		Entries: filtered,
		Bars:    bars,
	}
}
