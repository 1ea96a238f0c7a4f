package request

type CreateCarRequest struct {
	Brand        string   `json:"brand" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Slug         string   `json:"slug" validate:"required"`
	LicensePlate string   `json:"license_plate" validate:"required"`
	BaseImage    string   `json:"base_image" validate:"required"`
	Images       []string `json:"images,omitempty"`
	AmountPerDay float64  `json:"amount_per_day" validate:"required,gt=0"`
	CarUses      []string `json:"car_uses,omitempty"`
	Seats        int      `json:"seats" validate:"required,min=1"`
	Doors        int      `json:"doors" validate:"required,min=1"`
	Luggage      int      `json:"luggage" validate:"omitempty,min=0"`
	Transmission string   `json:"transmission" validate:"required,oneof=manual automatic"`
	Fuel         string   `json:"fuel" validate:"required"`
	Year         int      `json:"year" validate:"required,min=1950"`
}

// UpdateCarRequest is a partial update: absent fields keep their
// stored values.
type UpdateCarRequest struct {
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Slug         *string  `json:"slug,omitempty"`
	LicensePlate *string  `json:"license_plate,omitempty"`
	BaseImage    *string  `json:"base_image,omitempty"`
	Images       []string `json:"images,omitempty"`
	AmountPerDay *float64 `json:"amount_per_day,omitempty" validate:"omitempty,gt=0"`
	CarUses      []string `json:"car_uses,omitempty"`
	Seats        *int     `json:"seats,omitempty" validate:"omitempty,min=1"`
	Doors        *int     `json:"doors,omitempty" validate:"omitempty,min=1"`
	Luggage      *int     `json:"luggage,omitempty" validate:"omitempty,min=0"`
	Transmission *string  `json:"transmission,omitempty" validate:"omitempty,oneof=manual automatic"`
	Fuel         *string  `json:"fuel,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1950"`
}
