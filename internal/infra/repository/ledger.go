package repository

import (
	"context"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const balanceForUpdateSQL = `
SELECT balance_cents
FROM users
WHERE id = $1
FOR UPDATE`

// The balance guard in the WHERE clause keeps the invariant in the database:
// a balance can never go negative even if the caller's check raced.
const debitSQL = `
UPDATE users
SET balance_cents = balance_cents - $1, updated_at = now()
WHERE id = $2 AND balance_cents >= $1`

const creditSQL = `
UPDATE users
SET balance_cents = balance_cents + $1, updated_at = now()
WHERE id = $2`

type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (r *LedgerRepository) BalanceForUpdate(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (booking.Money, error) {
	var cents int64
	err := dbtx.QueryRow(ctx, balanceForUpdateSQL, userID).Scan(&cents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Money{}, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return booking.Money{}, infra.WrapRepoErr("failed to read balance", err)
	}

	return booking.NewMoney(cents), nil
}

func (r *LedgerRepository) Debit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount booking.Money) error {
	tag, err := dbtx.Exec(ctx, debitSQL, amount.Cents(), userID)
	if err != nil {
		return infra.WrapRepoErr("failed to debit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("balance too low to debit", nil, infra.KindInsufficientFunds)
	}

	return nil
}

func (r *LedgerRepository) Credit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount booking.Money) error {
	tag, err := dbtx.Exec(ctx, creditSQL, amount.Cents(), userID)
	if err != nil {
		return infra.WrapRepoErr("failed to credit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}

	return nil
}
