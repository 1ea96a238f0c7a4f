package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	ListDetailed(ctx context.Context, statuses []string) ([]*entity.BookingDetail, error)
	UpdateFields(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paidAmount *float64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, car_id, start_date, end_date,
		                      total_amount, paid_amount, ride_type, status,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CarID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalAmount,
		booking.PaidAmount,
		booking.RideType,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("car_id", booking.CarID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, car_id, start_date, end_date, total_amount,
		       paid_amount, ride_type, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CarID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalAmount,
		&booking.PaidAmount,
		&booking.RideType,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

const bookingDetailQuery = `
	SELECT b.id, b.user_id, b.car_id, b.start_date, b.end_date, b.total_amount,
	       b.paid_amount, b.ride_type, b.status, b.created_at, b.updated_at,
	       c.id, c.brand, c.model, c.slug, c.license_plate, c.base_image, c.images,
	       c.amount_per_day, c.car_uses, c.seats, c.doors, c.luggage,
	       c.transmission, c.fuel, c.year, c.created_at, c.updated_at,
	       u.id, u.phone_number, u.name, u.email, u.role
	FROM bookings b
	JOIN cars c ON c.id = b.car_id
	JOIN users u ON u.id = b.user_id
`

func scanBookingDetail(row pgx.Row) (*entity.BookingDetail, error) {
	var detail entity.BookingDetail
	var car entity.Car
	var user entity.User

	err := row.Scan(
		&detail.ID,
		&detail.UserID,
		&detail.CarID,
		&detail.StartDate,
		&detail.EndDate,
		&detail.TotalAmount,
		&detail.PaidAmount,
		&detail.RideType,
		&detail.Status,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&car.ID,
		&car.Brand,
		&car.Model,
		&car.Slug,
		&car.LicensePlate,
		&car.BaseImage,
		&car.Images,
		&car.AmountPerDay,
		&car.CarUses,
		&car.Seats,
		&car.Doors,
		&car.Luggage,
		&car.Transmission,
		&car.Fuel,
		&car.Year,
		&car.CreatedAt,
		&car.UpdatedAt,
		&user.ID,
		&user.PhoneNumber,
		&user.Name,
		&user.Email,
		&user.Role,
	)
	if err != nil {
		return nil, err
	}

	detail.Car = &car
	detail.User = &user
	return &detail, nil
}

func (r *bookingRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.id = $1`

	detail, err := scanBookingDetail(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking detail by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking detail by ID %s: %w", id.String(), err)
	}

	return detail, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.BookingDetail
	for rows.Next() {
		detail, err := scanBookingDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, detail)
	}

	return bookings, nil
}

// ListDetailed returns bookings with car and user expanded, newest
// first. An empty statuses slice means no status filter.
func (r *bookingRepository) ListDetailed(ctx context.Context, statuses []string) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + `
		WHERE cardinality($1::text[]) = 0 OR b.status = ANY($1::text[])
		ORDER BY b.created_at DESC
	`

	if statuses == nil {
		statuses = []string{}
	}

	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Strings("statuses", statuses),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingDetail
	for rows.Next() {
		detail, err := scanBookingDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, detail)
	}

	return bookings, nil
}

// UpdateFields applies a partial update: nil fields are left
// untouched.
func (r *bookingRepository) UpdateFields(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paidAmount *float64) error {
	query := `
		UPDATE bookings
		SET status = COALESCE($2::text, status),
		    paid_amount = COALESCE($3::float8, paid_amount),
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, paidAmount)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("update booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}
