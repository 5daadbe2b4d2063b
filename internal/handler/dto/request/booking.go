package request

import (
	"time"

	"driveshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	RenterID  uuid.UUID `json:"renter_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

// ToCommand parses the calendar dates. Range-order validation stays in the
// domain; only the format is checked here.
func (r CreateBookingRequest) ToCommand() (commands.AttemptRentalCommand, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return commands.AttemptRentalCommand{}, err
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return commands.AttemptRentalCommand{}, err
	}

	return commands.AttemptRentalCommand{
		CarID:     r.CarID,
		RenterID:  r.RenterID,
		StartDate: start,
		EndDate:   end,
	}, nil
}
