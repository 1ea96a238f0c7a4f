package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/internal/pricing"
	"car-rental/pkg/notify"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, statusFilter string) ([]response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", req.CarID, err)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s", req.StartDate)
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s", req.EndDate)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("invalid date range: end date before start date")
	}

	// Both referenced entities must exist before anything is written
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.UserID)
	}

	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil {
		s.log.Error("Failed to look up car", zap.Error(err), zap.String("car_id", req.CarID))
		return nil, fmt.Errorf("look up car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car %s not found", req.CarID)
	}

	rideType := entity.RideType(req.RideType)
	if rideType == "" {
		rideType = entity.RideTypeSolo
	}

	// Total is derived once at creation and never recomputed, even if
	// the car's rate changes later.
	totalAmount := pricing.Quote(startDate, endDate, car.AmountPerDay, rideType)

	paidAmount := 0.0
	if req.PaidAmount != nil {
		paidAmount = *req.PaidAmount
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		CarID:       carID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalAmount: totalAmount,
		PaidAmount:  paidAmount,
		RideType:    rideType,
		Status:      entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("car_id", req.CarID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("car_id", req.CarID),
		zap.Float64("total_amount", totalAmount),
		zap.String("ride_type", string(rideType)),
	)

	// The booking is authoritative from here on: notification record
	// and chat dispatch failures are logged, never surfaced.
	message := fmt.Sprintf("Your booking for %s %s has been created and is pending confirmation.", car.Brand, car.Model)
	s.createNotification(ctx, booking.UserID, booking.ID, message)

	go s.dispatchBookingAlert(booking, car)

	detail := &entity.BookingDetail{Booking: *booking, Car: car, User: user}
	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if req.Status == nil && req.PaidAmount == nil {
		return nil, fmt.Errorf("validation failed: at least one field (status or paid_amount) is required")
	}

	var status *entity.BookingStatus
	if req.Status != nil {
		st := entity.BookingStatus(*req.Status)
		if !entity.ValidBookingStatus(st) {
			return nil, fmt.Errorf("invalid status %s: must be one of PENDING, CONFIRMED, CANCELLED, COMPLETED", *req.Status)
		}
		status = &st
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	existing, err := s.repo.Booking.FindDetailByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Paid amount is bounded by the stored total, not any recomputed one
	if req.PaidAmount != nil {
		if *req.PaidAmount < 0 {
			return nil, fmt.Errorf("invalid paid amount: cannot be negative")
		}
		if *req.PaidAmount > existing.TotalAmount {
			return nil, fmt.Errorf("paid amount cannot exceed total amount")
		}
	}

	if err := s.repo.Booking.UpdateFields(ctx, id, status, req.PaidAmount); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if status != nil {
		existing.Status = *status
	}
	if req.PaidAmount != nil {
		existing.PaidAmount = *req.PaidAmount
	}
	existing.UpdatedAt = time.Now()

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(existing.Status)),
		zap.Float64("paid_amount", existing.PaidAmount),
	)

	// Exactly one notification, worded by which fields changed
	var message string
	switch {
	case status != nil && req.PaidAmount != nil:
		message = fmt.Sprintf("Your booking has been updated. Status: %s. Paid amount: $%.0f.", *status, *req.PaidAmount)
	case status != nil:
		message = fmt.Sprintf("Your booking status has been updated to %s.", *status)
	case req.PaidAmount != nil:
		message = fmt.Sprintf("Your payment has been updated. Paid amount: $%.0f.", *req.PaidAmount)
	}
	s.createNotification(ctx, existing.UserID, existing.ID, message)

	resp := response.BookingDetailToResponse(existing)
	return &resp, nil
}

// ListBookings returns bookings for the admin dashboard. Without a
// filter only PENDING and CONFIRMED bookings are shown.
func (s *bookingService) ListBookings(ctx context.Context, statusFilter string) ([]response.BookingResponse, error) {
	var statuses []string
	if statusFilter != "" {
		if !entity.ValidBookingStatus(entity.BookingStatus(statusFilter)) {
			return nil, fmt.Errorf("invalid status %s: must be one of PENDING, CONFIRMED, CANCELLED, COMPLETED", statusFilter)
		}
		statuses = []string{statusFilter}
	} else {
		statuses = []string{
			string(entity.BookingStatusPending),
			string(entity.BookingStatusConfirmed),
		}
	}

	bookings, err := s.repo.Booking.ListDetailed(ctx, statuses)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("status_filter", statusFilter))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		bookingResponses[i] = response.BookingDetailToResponse(b)
	}

	return bookingResponses, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		bookingResponses[i] = response.BookingDetailToResponse(b)
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(bookings)),
	)

	return bookingResponses, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) createNotification(ctx context.Context, userID, bookingID uuid.UUID, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		BookingID: bookingID,
		Message:   message,
		Sent:      false,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Error("Failed to create notification record",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		// Best-effort: the booking write stands
	}
}

func (s *bookingService) dispatchBookingAlert(booking *entity.Booking, car *entity.Car) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	message := fmt.Sprintf("🚗 *New Car Booking*\n\n"+
		"*Car:* %s\n"+
		"*Pickup Date:* %s\n"+
		"*Drop-off Date:* %s\n"+
		"*Total Amount:* $%.0f\n"+
		"*Booking ID:* %s",
		car.Model,
		booking.StartDate.Format("January 2, 2006"),
		booking.EndDate.Format("January 2, 2006"),
		booking.TotalAmount,
		booking.ID.String(),
	)

	if err := s.notifier.Notify(ctx, car.BaseImage, message); err != nil {
		s.log.Error("Failed to send booking alert",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}
