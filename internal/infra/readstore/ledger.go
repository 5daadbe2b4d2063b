package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

const findBalanceSQL = `
SELECT id, balance_cents
FROM users
WHERE id = $1`

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

func (r *LedgerReadStore) FindBalance(ctx context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	var view queries.BalanceView
	err := r.db.QueryRow(ctx, findBalanceSQL, userID).Scan(&view.UserID, &view.BalanceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read balance", err)
	}

	return &view, nil
}
