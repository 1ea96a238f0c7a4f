package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type UserSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	CarID       string               `json:"car_id"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	TotalAmount float64              `json:"total_amount"`
	PaidAmount  float64              `json:"paid_amount"`
	RideType    entity.RideType      `json:"ride_type"`
	Status      entity.BookingStatus `json:"status"`
	Car         *CarResponse         `json:"car,omitempty"`
	User        *UserSummary         `json:"user,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		CarID:       booking.CarID.String(),
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		TotalAmount: booking.TotalAmount,
		PaidAmount:  booking.PaidAmount,
		RideType:    booking.RideType,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingResponse {
	resp := BookingToResponse(&detail.Booking)

	if detail.Car != nil {
		car := CarToResponse(detail.Car)
		resp.Car = &car
	}

	if detail.User != nil {
		resp.User = &UserSummary{
			ID:          detail.User.ID.String(),
			Name:        detail.User.Name,
			Email:       detail.User.Email,
			PhoneNumber: detail.User.PhoneNumber,
		}
	}

	return resp
}
