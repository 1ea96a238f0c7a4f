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

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Car, error)
	FindByLicensePlate(ctx context.Context, licensePlate string) (*entity.Car, error)
	List(ctx context.Context, carUse string, limit, offset int) ([]*entity.Car, error)
	Count(ctx context.Context, carUse string) (int64, error)
	Update(ctx context.Context, car *entity.Car) error
}

type carRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarRepository(db database.PgxIface, log *zap.Logger) CarRepository {
	return &carRepository{
		db:  db,
		log: log.With(zap.String("repository", "car")),
	}
}

const carColumns = `id, brand, model, slug, license_plate, base_image, images,
	amount_per_day, car_uses, seats, doors, luggage, transmission, fuel, year,
	created_at, updated_at`

func scanCar(row pgx.Row) (*entity.Car, error) {
	var car entity.Car
	err := row.Scan(
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
	)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	query := `
		INSERT INTO cars (id, brand, model, slug, license_plate, base_image, images,
		                  amount_per_day, car_uses, seats, doors, luggage,
		                  transmission, fuel, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		car.ID,
		car.Brand,
		car.Model,
		car.Slug,
		car.LicensePlate,
		car.BaseImage,
		car.Images,
		car.AmountPerDay,
		car.CarUses,
		car.Seats,
		car.Doors,
		car.Luggage,
		car.Transmission,
		car.Fuel,
		car.Year,
		car.CreatedAt,
		car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("license_plate", car.LicensePlate),
		)
		return fmt.Errorf("create car %s: %w", car.LicensePlate, err)
	}

	return nil
}

func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE id = $1`, carColumns)

	car, err := scanCar(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID",
			zap.Error(err),
			zap.String("car_id", id.String()),
		)
		return nil, fmt.Errorf("find car by ID %s: %w", id.String(), err)
	}

	return car, nil
}

func (r *carRepository) FindBySlug(ctx context.Context, slug string) (*entity.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE slug = $1`, carColumns)

	car, err := scanCar(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find car by slug %s: %w", slug, err)
	}

	return car, nil
}

func (r *carRepository) FindByLicensePlate(ctx context.Context, licensePlate string) (*entity.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE license_plate = $1`, carColumns)

	car, err := scanCar(r.db.QueryRow(ctx, query, licensePlate))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by license plate",
			zap.Error(err),
			zap.String("license_plate", licensePlate),
		)
		return nil, fmt.Errorf("find car by license plate %s: %w", licensePlate, err)
	}

	return car, nil
}

func (r *carRepository) List(ctx context.Context, carUse string, limit, offset int) ([]*entity.Car, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM cars
		WHERE ($1 = '' OR $1 = ANY(car_uses))
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, carColumns)

	rows, err := r.db.Query(ctx, query, carUse, limit, offset)
	if err != nil {
		r.log.Error("Failed to list cars",
			zap.Error(err),
			zap.String("car_use", carUse),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}

func (r *carRepository) Count(ctx context.Context, carUse string) (int64, error) {
	query := `SELECT COUNT(*) FROM cars WHERE ($1 = '' OR $1 = ANY(car_uses))`

	var count int64
	err := r.db.QueryRow(ctx, query, carUse).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count cars",
			zap.Error(err),
			zap.String("car_use", carUse),
		)
		return 0, fmt.Errorf("count cars: %w", err)
	}

	return count, nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	query := `
		UPDATE cars
		SET brand = $2, model = $3, slug = $4, license_plate = $5, base_image = $6,
		    images = $7, amount_per_day = $8, car_uses = $9, seats = $10,
		    doors = $11, luggage = $12, transmission = $13, fuel = $14,
		    year = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		car.ID,
		car.Brand,
		car.Model,
		car.Slug,
		car.LicensePlate,
		car.BaseImage,
		car.Images,
		car.AmountPerDay,
		car.CarUses,
		car.Seats,
		car.Doors,
		car.Luggage,
		car.Transmission,
		car.Fuel,
		car.Year,
		car.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update car",
			zap.Error(err),
			zap.String("car_id", car.ID.String()),
		)
		return fmt.Errorf("update car %s: %w", car.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", car.ID.String())
	}

	return nil
}
