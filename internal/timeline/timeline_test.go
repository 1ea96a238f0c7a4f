package timeline_test

import (
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(status entity.BookingStatus, start, end string) *entity.BookingDetail {
	return &entity.BookingDetail{
		Booking: entity.Booking{
			Base:      entity.Base{ID: uuid.New()},
			CarID:     uuid.New(),
			StartDate: day(start),
			EndDate:   day(end),
			Status:    status,
		},
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	today := day("2024-03-10")

	result := timeline.Build(nil, uuid.Nil, today)

	assert.Equal(t, today, result.Start)
	assert.Equal(t, timeline.DefaultWindowDays, result.Days)
	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Bars)
}

func TestBuild_SingleBooking(t *testing.T) {
	b := booking(entity.BookingStatusConfirmed, "2024-03-10", "2024-03-12")

	result := timeline.Build([]*entity.BookingDetail{b}, uuid.Nil, day("2024-03-01"))

	assert.Equal(t, day("2024-03-10"), result.Start)
	// natural span is 3 days, clamped up to the minimum window
	assert.Equal(t, timeline.MinWindowDays, result.Days)

	require.Len(t, result.Bars, 1)
	assert.Equal(t, b.ID, result.Bars[0].BookingID)
	assert.Equal(t, 0, result.Bars[0].OffsetDays)
	assert.Equal(t, 3, result.Bars[0].WidthDays)
	assert.True(t, result.Bars[0].Confirmed)
}

func TestBuild_WindowClampedToMax(t *testing.T) {
	b := booking(entity.BookingStatusPending, "2024-01-01", "2024-07-19") // 200 days

	result := timeline.Build([]*entity.BookingDetail{b}, uuid.Nil, day("2024-01-01"))

	assert.Equal(t, day("2024-01-01"), result.Start)
	assert.Equal(t, timeline.MaxWindowDays, result.Days)

	require.Len(t, result.Bars, 1)
	assert.Equal(t, 0, result.Bars[0].OffsetDays)
	// bar is truncated at the window edge
	assert.Equal(t, timeline.MaxWindowDays, result.Bars[0].WidthDays)
	assert.False(t, result.Bars[0].Confirmed)
}

func TestBuild_BookingBeyondWindowListedNotRendered(t *testing.T) {
	long := booking(entity.BookingStatusConfirmed, "2024-01-01", "2024-07-19")
	far := booking(entity.BookingStatusPending, "2024-06-01", "2024-06-03") // day 152, past the 120-day clamp

	result := timeline.Build([]*entity.BookingDetail{long, far}, uuid.Nil, day("2024-01-01"))

	assert.Equal(t, timeline.MaxWindowDays, result.Days)
	assert.Len(t, result.Entries, 2)

	require.Len(t, result.Bars, 1)
	assert.Equal(t, long.ID, result.Bars[0].BookingID)
}

func TestBuild_FiltersNonOccupyingStatuses(t *testing.T) {
	confirmed := booking(entity.BookingStatusConfirmed, "2024-03-10", "2024-03-12")
	cancelled := booking(entity.BookingStatusCancelled, "2024-03-10", "2024-03-12")
	completed := booking(entity.BookingStatusCompleted, "2024-03-10", "2024-03-12")

	result := timeline.Build([]*entity.BookingDetail{confirmed, cancelled, completed}, uuid.Nil, day("2024-03-01"))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, confirmed.ID, result.Entries[0].ID)
}

func TestBuild_CarFilter(t *testing.T) {
	a := booking(entity.BookingStatusConfirmed, "2024-03-10", "2024-03-12")
	b := booking(entity.BookingStatusConfirmed, "2024-03-15", "2024-03-18")

	result := timeline.Build([]*entity.BookingDetail{a, b}, b.CarID, day("2024-03-01"))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, b.ID, result.Entries[0].ID)
	assert.Equal(t, day("2024-03-15"), result.Start)
}

func TestBuild_MultipleBookingsShareWindow(t *testing.T) {
	a := booking(entity.BookingStatusConfirmed, "2024-03-10", "2024-03-12")
	b := booking(entity.BookingStatusPending, "2024-03-14", "2024-03-20")

	result := timeline.Build([]*entity.BookingDetail{a, b}, uuid.Nil, day("2024-03-01"))

	assert.Equal(t, day("2024-03-10"), result.Start)
	// Mar 10 .. Mar 20 inclusive
	assert.Equal(t, 11, result.Days)

	require.Len(t, result.Bars, 2)
	assert.Equal(t, 0, result.Bars[0].OffsetDays)
	assert.Equal(t, 3, result.Bars[0].WidthDays)
	assert.Equal(t, 4, result.Bars[1].OffsetDays)
	assert.Equal(t, 7, result.Bars[1].WidthDays)
}

func TestOccupies(t *testing.T) {
	assert.True(t, timeline.Occupies(entity.BookingStatusPending))
	assert.True(t, timeline.Occupies(entity.BookingStatusConfirmed))
	assert.True(t, timeline.Occupies(entity.BookingStatus("confirmed")))
	assert.False(t, timeline.Occupies(entity.BookingStatusCancelled))
	assert.False(t, timeline.Occupies(entity.BookingStatusCompleted))
}
