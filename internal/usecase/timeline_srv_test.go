package usecase_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/timeline"
	"car-rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func timelineDetail(status entity.BookingStatus, start, end time.Time) *entity.BookingDetail {
	return &entity.BookingDetail{
		Booking: entity.Booking{
			Base:      entity.Base{ID: uuid.New()},
			UserID:    uuid.New(),
			CarID:     uuid.New(),
			StartDate: start,
			EndDate:   end,
			Status:    status,
		},
	}
}

func TestGetTimeline(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := usecase.NewTimelineService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

	start := time.Now().AddDate(0, 0, 3)
	confirmed := timelineDetail(entity.BookingStatusConfirmed, start, start.AddDate(0, 0, 2))
	cancelled := timelineDetail(entity.BookingStatusCancelled, start, start.AddDate(0, 0, 2))
	bookingRepo.listResult = []*entity.BookingDetail{confirmed, cancelled}

	resp, err := service.GetTimeline(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, timeline.MinWindowDays, resp.WindowDays)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, confirmed.ID.String(), resp.Bookings[0].ID)
	require.Len(t, resp.Bars, 1)
	assert.Equal(t, 0, resp.Bars[0].OffsetDays)
	assert.Equal(t, 3, resp.Bars[0].WidthDays)
}

func TestGetTimeline_Empty(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := usecase.NewTimelineService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

	resp, err := service.GetTimeline(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, timeline.DefaultWindowDays, resp.WindowDays)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.WindowStart)
	assert.Empty(t, resp.Bookings)
	assert.Empty(t, resp.Bars)
}

func TestGetTimeline_CarFilter(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := usecase.NewTimelineService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

	start := time.Now()
	a := timelineDetail(entity.BookingStatusConfirmed, start, start.AddDate(0, 0, 1))
	b := timelineDetail(entity.BookingStatusConfirmed, start, start.AddDate(0, 0, 1))
	bookingRepo.listResult = []*entity.BookingDetail{a, b}

	resp, err := service.GetTimeline(context.Background(), b.CarID.String())

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, b.ID.String(), resp.Bookings[0].ID)
}

func TestGetTimeline_InvalidCarID(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := usecase.NewTimelineService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

	_, err := service.GetTimeline(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid car ID format")
}
