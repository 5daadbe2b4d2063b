package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("price cannot be negative")

// Booking is a reserved, paid interval during which a renter has exclusive use
// of a specific car. The owner is recorded as counterparty so later review
// flows can attribute the rental.
type Booking struct {
	id        uuid.UUID
	carID     uuid.UUID
	renterID  uuid.UUID
	ownerID   uuid.UUID
	dates     DateRange
	status    Status
	price     Money
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	carID uuid.UUID,
	renterID uuid.UUID,
	ownerID uuid.UUID,
	dates DateRange,
	price Money,
) (*Booking, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:       uuid.New(),
		carID:    carID,
		renterID: renterID,
		ownerID:  ownerID,
		dates:    dates,
		status:   StatusBooked,
		price:    price,
	}, nil
}

func ReconstructBooking(
	id, carID, renterID, ownerID uuid.UUID,
	dates DateRange,
	status Status,
	price Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		carID:     carID,
		renterID:  renterID,
		ownerID:   ownerID,
		dates:     dates,
		status:    status,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) CarID() uuid.UUID     { return b.carID }
func (b *Booking) RenterID() uuid.UUID  { return b.renterID }
func (b *Booking) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Price() Money         { return b.price }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
