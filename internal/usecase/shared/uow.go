package shared

import (
	"context"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/car"
	"driveshare/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Cars() CarRepository
	Bookings() BookingRepository
	Ledger() LedgerRepository
	Idempotency() IdempotencyRepository
	DB() db.DBTX
}

type CommandReads interface {
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type CarRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *car.Car) (uuid.UUID, error)
	// FindByIDForUpdate locks the car row for the rest of the transaction,
	// serializing concurrent rental attempts on the same car.
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*CarSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	ActiveRangesByCar(ctx context.Context, dbtx db.DBTX, carID uuid.UUID) ([]booking.DateRange, error)
}

type LedgerRepository interface {
	// BalanceForUpdate locks the user's ledger row for the rest of the
	// transaction.
	BalanceForUpdate(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (booking.Money, error)
	// Debit fails with KindInsufficientFunds rather than letting the balance
	// go negative.
	Debit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount booking.Money) error
	Credit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount booking.Money) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key with status "processing". It reports false
	// without error when another request already holds a live claim on the
	// key; an expired claim is reclaimed.
	TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error
}
