package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

const findCarByIDSQL = `
SELECT id, owner_id, model, year, mileage, location, daily_rate_cents, created_at, updated_at
FROM cars
WHERE id = $1`

const searchCarsByLocationSQL = `
SELECT id, owner_id, model, year, mileage, location, daily_rate_cents, created_at, updated_at
FROM cars
WHERE location ILIKE '%' || $1 || '%'
ORDER BY created_at DESC`

const findCarsByOwnerSQL = `
SELECT id, owner_id, model, year, mileage, location, daily_rate_cents, created_at, updated_at
FROM cars
WHERE owner_id = $1
ORDER BY created_at DESC`

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row := r.db.QueryRow(ctx, findCarByIDSQL, id)

	view, err := scanCarView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return view, nil
}

func (r *CarReadStore) SearchByLocation(ctx context.Context, location string) ([]*queries.CarView, error) {
	return r.list(ctx, searchCarsByLocationSQL, location)
}

func (r *CarReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.CarView, error) {
	return r.list(ctx, findCarsByOwnerSQL, ownerID)
}

func (r *CarReadStore) list(ctx context.Context, sql string, arg any) ([]*queries.CarView, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	views := []*queries.CarView{}
	for rows.Next() {
		view, err := scanCarView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCarView(row rowScanner) (*queries.CarView, error) {
	var view queries.CarView
	err := row.Scan(
		&view.ID,
		&view.OwnerID,
		&view.Model,
		&view.Year,
		&view.Mileage,
		&view.Location,
		&view.DailyRateCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
