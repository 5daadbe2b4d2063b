package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"

	"github.com/google/uuid"
)

const createBookingSQL = `
INSERT INTO bookings (id, car_id, renter_id, owner_id, start_date, end_date, status, price_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

const activeRangesByCarSQL = `
SELECT start_date, end_date
FROM bookings
WHERE car_id = $1 AND status = $2
ORDER BY start_date`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.CarID(),
		b.RenterID(),
		b.OwnerID(),
		b.Dates().Start(),
		b.Dates().End(),
		b.Status().String(),
		b.Price().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) ActiveRangesByCar(ctx context.Context, dbtx db.DBTX, carID uuid.UUID) ([]booking.DateRange, error) {
	rows, err := dbtx.Query(ctx, activeRangesByCarSQL, carID, booking.StatusBooked.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active bookings", err)
	}
	defer rows.Close()

	var ranges []booking.DateRange
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking range", err)
		}
		rng, err := booking.NewDateRange(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking range is invalid", err)
		}
		ranges = append(ranges, rng)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active bookings", err)
	}

	return ranges, nil
}
