// Package pricing computes rental charges from a date range, a
// per-day rate and a ride type.
package pricing

import (
	"math"
	"time"

	"car-rental/internal/data/entity"
)

// ChauffeuredMultiplier is the surcharge applied when a driver is
// included.
const ChauffeuredMultiplier = 1.3

// Days returns the number of chargeable days between start and end.
// A partial day counts as a full day, and a same-day rental charges
// one day.
func Days(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Quote computes the total charge for the given range and ride type,
// rounded half away from zero.
func Quote(start, end time.Time, perDay float64, rideType entity.RideType) float64 {
	rate := perDay
	if rideType == entity.RideTypeChauffeured {
		rate = perDay * ChauffeuredMultiplier
	}
	return math.Round(float64(Days(start, end)) * rate)
}
