//go:build unit

package builder

import (
	"time"

	"driveshare/internal/domain/booking"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	CarID      uuid.UUID
	CarModel   string
	RenterID   uuid.UUID
	OwnerID    uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	PriceCents int64
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		CarID:      uuid.New(),
		CarModel:   "Toyota Corolla",
		RenterID:   uuid.New(),
		OwnerID:    uuid.New(),
		StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
		PriceCents: 15000,
		CreatedAt:  time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	dates, err := booking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.CarID, b.RenterID, b.OwnerID, dates, booking.NewMoney(b.PriceCents))
}

func (b *BookingBuilder) BuildCommand() commands.AttemptRentalCommand {
	return commands.AttemptRentalCommand{
		CarID:     b.CarID,
		RenterID:  b.RenterID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		CarID:      b.CarID,
		CarModel:   b.CarModel,
		RenterID:   b.RenterID,
		OwnerID:    b.OwnerID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     booking.StatusBooked.String(),
		PriceCents: b.PriceCents,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:     b.CarID,
		RenterID:  b.RenterID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithCarID(carID uuid.UUID) *BookingBuilder {
	b.CarID = carID
	return b
}

func (b *BookingBuilder) WithRenterID(renterID uuid.UUID) *BookingBuilder {
	b.RenterID = renterID
	return b
}

func (b *BookingBuilder) WithOwnerID(ownerID uuid.UUID) *BookingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int64) *BookingBuilder {
	b.PriceCents = cents
	return b
}
