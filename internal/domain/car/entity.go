package car

import (
	"errors"
	"strings"
	"time"

	"driveshare/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyModel      = errors.New("car model cannot be empty")
	ErrEmptyLocation   = errors.New("car location cannot be empty")
	ErrInvalidYear     = errors.New("car year is out of range")
	ErrNegativeMileage = errors.New("mileage cannot be negative")
	ErrNegativeRate    = errors.New("daily rate cannot be negative")
	ErrModelTooLong    = errors.New("car model is too long (max 255 characters)")
	ErrLocationTooLong = errors.New("car location is too long (max 255 characters)")
)

const (
	MaxModelLength    = 255
	MaxLocationLength = 255
	minModelYear      = 1900
	maxModelYear      = 2100
)

// Car is a listed vehicle. The daily rate read here is the price snapshot a
// rental is computed from; concurrent rate edits during a rental attempt are
// not detected.
type Car struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	model     string
	year      int
	mileage   int
	location  string
	dailyRate booking.Money
	createdAt time.Time
	updatedAt time.Time
}

func NewCar(ownerID uuid.UUID, model string, year, mileage int, location string, dailyRate booking.Money) (*Car, error) {
	model = strings.TrimSpace(model)
	location = strings.TrimSpace(location)

	if model == "" {
		return nil, ErrEmptyModel
	}
	if len(model) > MaxModelLength {
		return nil, ErrModelTooLong
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if len(location) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}
	if year < minModelYear || year > maxModelYear {
		return nil, ErrInvalidYear
	}
	if mileage < 0 {
		return nil, ErrNegativeMileage
	}
	if dailyRate.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Car{
		id:        uuid.New(),
		ownerID:   ownerID,
		model:     model,
		year:      year,
		mileage:   mileage,
		location:  location,
		dailyRate: dailyRate,
	}, nil
}

func ReconstructCar(
	id, ownerID uuid.UUID,
	model string,
	year, mileage int,
	location string,
	dailyRate booking.Money,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:        id,
		ownerID:   ownerID,
		model:     model,
		year:      year,
		mileage:   mileage,
		location:  location,
		dailyRate: dailyRate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// QuoteFor prices a rental over the given range at the current daily rate.
func (c *Car) QuoteFor(dates booking.DateRange) booking.Money {
	return c.dailyRate.MultiplyDays(dates.Days())
}

func (c *Car) ID() uuid.UUID            { return c.id }
func (c *Car) OwnerID() uuid.UUID       { return c.ownerID }
func (c *Car) Model() string            { return c.model }
func (c *Car) Year() int                { return c.year }
func (c *Car) Mileage() int             { return c.mileage }
func (c *Car) Location() string         { return c.location }
func (c *Car) DailyRate() booking.Money { return c.dailyRate }
func (c *Car) CreatedAt() time.Time     { return c.createdAt }
func (c *Car) UpdatedAt() time.Time     { return c.updatedAt }
