package response

import (
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"ownerId"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Mileage        int       `json:"mileage"`
	Location       string    `json:"location"`
	DailyRateCents int64     `json:"dailyRateCents"`
	DailyRate      string    `json:"dailyRate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromCarView(rm *queries.CarView) *CarResponse {
	return &CarResponse{
		ID:             rm.ID,
		OwnerID:        rm.OwnerID,
		Model:          rm.Model,
		Year:           rm.Year,
		Mileage:        rm.Mileage,
		Location:       rm.Location,
		DailyRateCents: rm.DailyRateCents,
		DailyRate:      booking.NewMoney(rm.DailyRateCents).String(),
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}
