package request

import (
	"driveshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	OwnerID        uuid.UUID `json:"owner_id" binding:"required"`
	Model          string    `json:"model" binding:"required"`
	Year           int       `json:"year" binding:"required"`
	Mileage        int       `json:"mileage"`
	Location       string    `json:"location" binding:"required"`
	DailyRateCents int64     `json:"daily_rate_cents" binding:"required"`
}

func (r CreateCarRequest) ToCommand() commands.ListCarCommand {
	return commands.ListCarCommand{
		OwnerID:        r.OwnerID,
		Model:          r.Model,
		Year:           r.Year,
		Mileage:        r.Mileage,
		Location:       r.Location,
		DailyRateCents: r.DailyRateCents,
	}
}
