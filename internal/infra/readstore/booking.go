package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

const findBookingByIDSQL = `
SELECT b.id, b.car_id, c.model, b.renter_id, b.owner_id,
       b.start_date, b.end_date, b.status, b.price_cents,
       b.created_at, b.updated_at
FROM bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.id = $1`

const findBookingsByRenterSQL = `
SELECT b.id, b.car_id, c.model, b.start_date, b.end_date,
       b.status, b.price_cents, b.created_at
FROM bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.renter_id = $1
ORDER BY b.created_at DESC`

const findBookingsByOwnerSQL = `
SELECT b.id, b.car_id, c.model, b.start_date, b.end_date,
       b.status, b.price_cents, b.created_at
FROM bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.owner_id = $1
ORDER BY b.created_at DESC`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID,
		&view.CarID,
		&view.CarModel,
		&view.RenterID,
		&view.OwnerID,
		&view.StartDate,
		&view.EndDate,
		&view.Status,
		&view.PriceCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}

func (r *BookingReadStore) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, findBookingsByRenterSQL, renterID)
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, findBookingsByOwnerSQL, ownerID)
}

func (r *BookingReadStore) list(ctx context.Context, sql string, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID,
			&item.CarID,
			&item.CarModel,
			&item.StartDate,
			&item.EndDate,
			&item.Status,
			&item.PriceCents,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return items, nil
}
