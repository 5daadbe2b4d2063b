package response

import (
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	CarID      uuid.UUID `json:"carId"`
	CarModel   string    `json:"carModel"`
	RenterID   uuid.UUID `json:"renterId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	CarID      uuid.UUID `json:"carId"`
	CarModel   string    `json:"carModel"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         rm.ID,
		CarID:      rm.CarID,
		CarModel:   rm.CarModel,
		RenterID:   rm.RenterID,
		OwnerID:    rm.OwnerID,
		StartDate:  rm.StartDate.Format(time.DateOnly),
		EndDate:    rm.EndDate.Format(time.DateOnly),
		Status:     rm.Status,
		PriceCents: rm.PriceCents,
		Total:      booking.NewMoney(rm.PriceCents).String(),
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         rm.ID,
		CarID:      rm.CarID,
		CarModel:   rm.CarModel,
		StartDate:  rm.StartDate.Format(time.DateOnly),
		EndDate:    rm.EndDate.Format(time.DateOnly),
		Status:     rm.Status,
		PriceCents: rm.PriceCents,
		Total:      booking.NewMoney(rm.PriceCents).String(),
		CreatedAt:  rm.CreatedAt,
	}
}
