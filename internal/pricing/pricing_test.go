package pricing_test

import (
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "three full days",
			start: date("2024-01-01"),
			end:   date("2024-01-04"),
			want:  3,
		},
		{
			name:  "same day counts as one",
			start: date("2024-01-01"),
			end:   date("2024-01-01"),
			want:  1,
		},
		{
			name:  "partial day rounds up",
			start: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "exactly 24 hours is one day",
			start: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Days(tt.start, tt.end))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		perDay   float64
		rideType entity.RideType
		want     float64
	}{
		{
			name:     "solo three days",
			start:    date("2024-01-01"),
			end:      date("2024-01-04"),
			perDay:   100,
			rideType: entity.RideTypeSolo,
			want:     300,
		},
		{
			name:     "chauffeured three days",
			start:    date("2024-01-01"),
			end:      date("2024-01-04"),
			perDay:   100,
			rideType: entity.RideTypeChauffeured,
			want:     390,
		},
		{
			name:     "same day chauffeured",
			start:    date("2024-01-01"),
			end:      date("2024-01-01"),
			perDay:   100,
			rideType: entity.RideTypeChauffeured,
			want:     130,
		},
		{
			name:     "rounds half away from zero",
			start:    date("2024-01-01"),
			end:      date("2024-01-02"),
			perDay:   99.5,
			rideType: entity.RideTypeSolo,
			want:     100,
		},
		{
			name:     "chauffeured fractional total rounds",
			start:    date("2024-01-01"),
			end:      date("2024-01-02"),
			perDay:   99.99,
			rideType: entity.RideTypeChauffeured,
			want:     130, // 99.99 * 1.3 = 129.987
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Quote(tt.start, tt.end, tt.perDay, tt.rideType))
		})
	}
}
