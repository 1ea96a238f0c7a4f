package request

type CreateBookingRequest struct {
	UserID     string   `json:"user_id" validate:"required,uuid4"`
	CarID      string   `json:"car_id" validate:"required,uuid4"`
	StartDate  string   `json:"start_date" validate:"required"`
	EndDate    string   `json:"end_date" validate:"required"`
	PaidAmount *float64 `json:"paid_amount,omitempty" validate:"omitempty,min=0"`
	RideType   string   `json:"ride_type,omitempty" validate:"omitempty,oneof=solo chauffeured"`
}

// UpdateBookingRequest carries a partial update: absent fields are
// left untouched. Field rules are business checks in the service, not
// struct tags, because they depend on the stored booking.
type UpdateBookingRequest struct {
	Status     *string  `json:"status,omitempty"`
	PaidAmount *float64 `json:"paid_amount,omitempty"`
}
