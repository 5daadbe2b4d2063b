package repository

import (
	"context"

	"driveshare/internal/domain/car"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

const createCarSQL = `
INSERT INTO cars (id, owner_id, model, year, mileage, location, daily_rate_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// FOR UPDATE: the car row acts as the per-car lock serializing concurrent
// rental attempts.
const findCarByIDForUpdateSQL = `
SELECT id, owner_id, model, location, daily_rate_cents
FROM cars
WHERE id = $1
FOR UPDATE`

type CarRepository struct{}

func NewCarRepository() *CarRepository {
	return &CarRepository{}
}

func (r *CarRepository) Create(ctx context.Context, dbtx db.DBTX, c *car.Car) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createCarSQL,
		c.ID(),
		c.OwnerID(),
		c.Model(),
		c.Year(),
		c.Mileage(),
		c.Location(),
		c.DailyRate().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}

	return id, nil
}

func (r *CarRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.CarSnapshot, error) {
	var snap shared.CarSnapshot
	err := dbtx.QueryRow(ctx, findCarByIDForUpdateSQL, id).Scan(
		&snap.ID,
		&snap.OwnerID,
		&snap.Model,
		&snap.Location,
		&snap.DailyRateCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car for update", err)
	}

	return &snap, nil
}
