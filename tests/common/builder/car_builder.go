//go:build unit

package builder

import (
	"time"

	"driveshare/internal/domain/booking"
	domcar "driveshare/internal/domain/car"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Model          string
	Year           int
	Mileage        int
	Location       string
	DailyRateCents int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCarBuilder() *CarBuilder {
	now := time.Now()
	return &CarBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Model:          "Toyota Corolla",
		Year:           2021,
		Mileage:        24000,
		Location:       "Boston",
		DailyRateCents: 5000,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (c *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CarBuilder) BuildDomain() (*domcar.Car, error) {
	return domcar.NewCar(c.OwnerID, c.Model, c.Year, c.Mileage, c.Location, booking.NewMoney(c.DailyRateCents))
}

func (c *CarBuilder) BuildSnapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		Model:          c.Model,
		Location:       c.Location,
		DailyRateCents: c.DailyRateCents,
	}
}

func (c *CarBuilder) BuildViewQuery() *queries.CarView {
	return &queries.CarView{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		Model:          c.Model,
		Year:           c.Year,
		Mileage:        c.Mileage,
		Location:       c.Location,
		DailyRateCents: c.DailyRateCents,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (c *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		OwnerID:        c.OwnerID,
		Model:          c.Model,
		Year:           c.Year,
		Mileage:        c.Mileage,
		Location:       c.Location,
		DailyRateCents: c.DailyRateCents,
	}
}

// Fluent builder methods
func (c *CarBuilder) WithOwnerID(ownerID uuid.UUID) *CarBuilder {
	c.OwnerID = ownerID
	return c
}

func (c *CarBuilder) WithModel(model string) *CarBuilder {
	c.Model = model
	return c
}

func (c *CarBuilder) WithYear(year int) *CarBuilder {
	c.Year = year
	return c
}

func (c *CarBuilder) WithMileage(mileage int) *CarBuilder {
	c.Mileage = mileage
	return c
}

func (c *CarBuilder) WithLocation(location string) *CarBuilder {
	c.Location = location
	return c
}

func (c *CarBuilder) WithDailyRateCents(cents int64) *CarBuilder {
	c.DailyRateCents = cents
	return c
}
