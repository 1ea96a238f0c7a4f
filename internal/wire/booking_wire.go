package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	timelineHandler *adaptor.TimelineHandler,
	notificationHandler *adaptor.NotificationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - Booking history (user's own bookings)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/user/notifications - In-app notification feed
		r.Get("/api/user/notifications", notificationHandler.GetUserNotifications)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/bookings - List bookings, default filter PENDING+CONFIRMED
		r.Get("/api/bookings", bookingHandler.ListBookings)

		// PATCH /api/bookings/{id}/status - Update booking status and/or paid amount
		r.Patch("/api/bookings/{id}/status", bookingHandler.UpdateBooking)

		// GET /api/admin/timeline - Availability timeline, optional carId filter
		r.Get("/api/admin/timeline", timelineHandler.GetTimeline)
	})
}
