package queries

import (
	"context"

	"github.com/google/uuid"
)

type BalanceView struct {
	UserID       uuid.UUID `json:"user_id"`
	BalanceCents int64     `json:"balance_cents"`
}

type LedgerQueries interface {
	Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
}

type LedgerReadStore interface {
	FindBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

func (q *ledgerQueriesImpl) Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	return q.store.FindBalance(ctx, userID)
}
