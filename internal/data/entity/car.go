package entity

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

type Car struct {
	Base
	Brand        string       `db:"brand"`
	Model        string       `db:"model"`
	Slug         string       `db:"slug"`
	LicensePlate string       `db:"license_plate"`
	BaseImage    string       `db:"base_image"`
	Images       []string     `db:"images"`
	AmountPerDay float64      `db:"amount_per_day"`
	CarUses      []string     `db:"car_uses"`
	Seats        int          `db:"seats"`
	Doors        int          `db:"doors"`
	Luggage      int          `db:"luggage"`
	Transmission Transmission `db:"transmission"`
	Fuel         string       `db:"fuel"`
	Year         int          `db:"year"`
}
