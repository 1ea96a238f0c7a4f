package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/response"
	"car-rental/internal/timeline"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TimelineService interface {
	GetTimeline(ctx context.Context, carID string) (*response.TimelineResponse, error)
}

type timelineService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTimelineService(repo *repository.Repository, log *zap.Logger) TimelineService {
	return &timelineService{
		repo: repo,
		log:  log.With(zap.String("service", "timeline")),
	}
}

// GetTimeline fetches all bookings with relations and delegates the
// geometry to the pure timeline builder. carID is optional; empty
// means all cars.
func (s *timelineService) GetTimeline(ctx context.Context, carID string) (*response.TimelineResponse, error) {
	carFilter := uuid.Nil
	if carID != "" {
		parsed, err := uuid.Parse(carID)
		if err != nil {
			return nil, fmt.Errorf("invalid car ID format %s: %w", carID, err)
		}
		carFilter = parsed
	}

	bookings, err := s.repo.Booking.ListDetailed(ctx, nil)
	if err != nil {
		s.log.Error("Failed to fetch bookings for timeline", zap.Error(err))
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}

	result := timeline.Build(bookings, carFilter, time.Now())

	entries := make([]response.BookingResponse, len(result.Entries))
	for i, b := range result.Entries {
		entries[i] = response.BookingDetailToResponse(b)
	}

	s.log.Info("Timeline built",
		zap.Int("bookings", len(result.Entries)),
		zap.Int("bars", len(result.Bars)),
		zap.Int("window_days", result.Days),
	)

	return &response.TimelineResponse{
		WindowStart: result.Start.Format("2006-01-02"),
		WindowDays:  result.Days,
		Bookings:    entries,
		Bars:        result.Bars,
	}, nil
}
