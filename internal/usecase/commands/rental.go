package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound            = errs.New("car not found")
	ErrDateRangeConflict      = errs.New("date range conflict")
	ErrInvalidDateRange       = errs.New("invalid date range")
	ErrInsufficientBalance    = errs.New("insufficient balance")
	ErrPersistenceFailure     = errs.New("persistence failure")
	ErrRentalInProgress       = errs.New("rental request in progress")
	ErrDuplicateRental        = errs.New("duplicate rental request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

const rentalEndpoint = "POST /bookings"

type AttemptRentalCommand struct {
	CarID     uuid.UUID
	RenterID  uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

type RentalResult struct {
	Booking  *queries.BookingView
	Replayed bool
}

type RentalCommands interface {
	// AttemptRental validates the request against the car and its existing
	// bookings, debits the renter and inserts the booking as one unit of
	// work. Pass uuid.Nil as the idempotency key to skip replay handling.
	AttemptRental(ctx context.Context, cmd AttemptRentalCommand, idempotencyKey uuid.UUID) (*RentalResult, error)
}

type rentalCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewRentalCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) RentalCommands {
	return &rentalCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

func (r *rentalCommandsImpl) AttemptRental(
	ctx context.Context,
	cmd AttemptRentalCommand,
	idempotencyKey uuid.UUID,
) (*RentalResult, error) {
	dates, err := booking.NewDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	if idempotencyKey != uuid.Nil {
		replayed, err := r.claimIdempotencyKey(ctx, cmd, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &RentalResult{Booking: replayed, Replayed: true}, nil
		}
	}

	bookingID, err := r.executeRental(ctx, cmd, dates, idempotencyKey)
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full booking view
	view, err := r.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	return &RentalResult{Booking: view, Replayed: false}, nil
}

// executeRental runs steps 1-5 inside one transaction. The car row is locked
// first, so the overlap check and the debit+insert cannot interleave with a
// concurrent attempt on the same car.
func (r *rentalCommandsImpl) executeRental(
	ctx context.Context,
	cmd AttemptRentalCommand,
	dates booking.DateRange,
	idempotencyKey uuid.UUID,
) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		carSnap, err := tx.Cars().FindByIDForUpdate(ctx, tx.DB(), cmd.CarID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCarNotFound
			}
			return errs.Mark(err, ErrPersistenceFailure)
		}

		existing, err := tx.Bookings().ActiveRangesByCar(ctx, tx.DB(), cmd.CarID)
		if err != nil {
			return errs.Mark(err, ErrPersistenceFailure)
		}
		for _, taken := range existing {
			if taken.Overlaps(dates) {
				return ErrDateRangeConflict
			}
		}

		totalCost := booking.NewMoney(carSnap.DailyRateCents).MultiplyDays(dates.Days())

		balance, err := tx.Ledger().BalanceForUpdate(ctx, tx.DB(), cmd.RenterID)
		if err != nil {
			return errs.Mark(err, ErrPersistenceFailure)
		}
		if balance.LessThan(totalCost) {
			return ErrInsufficientBalance
		}

		entity, err := booking.NewBooking(cmd.CarID, cmd.RenterID, carSnap.OwnerID, dates, totalCost)
		if err != nil {
			return errs.Mark(err, ErrPersistenceFailure)
		}

		if err := tx.Ledger().Debit(ctx, tx.DB(), cmd.RenterID, totalCost); err != nil {
			if infra.IsKind(err, infra.KindInsufficientFunds) {
				return ErrInsufficientBalance
			}
			return errs.Mark(err, ErrPersistenceFailure)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDateRangeConflict
			}
			return errs.Mark(err, ErrPersistenceFailure)
		}

		if idempotencyKey != uuid.Nil {
			if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), idempotencyKey, cmd.RenterID, id); err != nil {
				return errs.Mark(err, ErrPersistenceFailure)
			}
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, markUnlessRentalOutcome(err)
	}

	return bookingID, nil
}

// claimIdempotencyKey returns a non-nil view when the key was already
// completed and the stored confirmation should be replayed.
func (r *rentalCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	cmd AttemptRentalCommand,
	idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	requestHash := r.calculateRequestHash(cmd)
	expiresAt := r.clock.Now().Add(24 * time.Hour)

	var claimed bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, cmd.RenterID, rentalEndpoint, requestHash, expiresAt)
		if err != nil {
			return err
		}
		claimed = inserted
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := r.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, cmd.RenterID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheckFailed)
		}
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRental
		}
		view, err := r.bookingQueries.GetByID(ctx, *existing.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		return view, nil

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRental
		}
		return nil, ErrRentalInProgress

	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (r *rentalCommandsImpl) calculateRequestHash(cmd AttemptRentalCommand) string {
	data, _ := json.Marshal(map[string]string{
		"car_id":     cmd.CarID.String(),
		"renter_id":  cmd.RenterID.String(),
		"start_date": cmd.StartDate.Format(time.DateOnly),
		"end_date":   cmd.EndDate.Format(time.DateOnly),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// markUnlessRentalOutcome passes the typed rental outcomes through untouched
// and folds everything else (begin/commit faults included) into
// ErrPersistenceFailure.
func markUnlessRentalOutcome(err error) error {
	for _, outcome := range []error{
		ErrCarNotFound,
		ErrDateRangeConflict,
		ErrInvalidDateRange,
		ErrInsufficientBalance,
		ErrPersistenceFailure,
	} {
		if errors.Is(err, outcome) {
			return err
		}
	}
	return errs.Mark(err, ErrPersistenceFailure)
}
