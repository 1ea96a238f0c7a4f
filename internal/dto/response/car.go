package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type CarResponse struct {
	ID           string    `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Slug         string    `json:"slug"`
	LicensePlate string    `json:"license_plate"`
	BaseImage    string    `json:"base_image"`
	Images       []string  `json:"images"`
	AmountPerDay float64   `json:"amount_per_day"`
	CarUses      []string  `json:"car_uses"`
	Seats        int       `json:"seats"`
	Doors        int       `json:"doors"`
	Luggage      int       `json:"luggage"`
	Transmission string    `json:"transmission"`
	Fuel         string    `json:"fuel"`
	Year         int       `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
}

func CarToResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:           car.ID.String(),
		Brand:        car.Brand,
		Model:        car.Model,
		Slug:         car.Slug,
		LicensePlate: car.LicensePlate,
		BaseImage:    car.BaseImage,
		Images:       car.Images,
		AmountPerDay: car.AmountPerDay,
		CarUses:      car.CarUses,
		Seats:        car.Seats,
		Doors:        car.Doors,
		Luggage:      car.Luggage,
		Transmission: string(car.Transmission),
		Fuel:         car.Fuel,
		Year:         car.Year,
		CreatedAt:    car.CreatedAt,
	}
}
