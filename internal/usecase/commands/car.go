package commands

import (
	"context"
	"errors"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/car"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound    = errs.New("owner not found")
	ErrInvalidCarDetail = errs.New("invalid car detail")
)

type ListCarCommand struct {
	OwnerID        uuid.UUID
	Model          string
	Year           int
	Mileage        int
	Location       string
	DailyRateCents int64
}

type CarCommands interface {
	// ListCar publishes a new car listing owned by the given user.
	ListCar(ctx context.Context, cmd ListCarCommand) (*queries.CarView, error)
}

type carCommandsImpl struct {
	uow        shared.UnitOfWork
	carQueries queries.CarQueries
}

func NewCarCommands(uow shared.UnitOfWork, carQueries queries.CarQueries) CarCommands {
	return &carCommandsImpl{
		uow:        uow,
		carQueries: carQueries,
	}
}

func (c *carCommandsImpl) ListCar(ctx context.Context, cmd ListCarCommand) (*queries.CarView, error) {
	entity, err := car.NewCar(
		cmd.OwnerID,
		cmd.Model,
		cmd.Year,
		cmd.Mileage,
		cmd.Location,
		booking.NewMoney(cmd.DailyRateCents),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCarDetail)
	}

	var carID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Cars().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrOwnerNotFound
			}
			return errs.Mark(err, ErrPersistenceFailure)
		}
		carID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) || errors.Is(err, ErrPersistenceFailure) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	view, err := c.carQueries.GetByID(ctx, carID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	return view, nil
}
