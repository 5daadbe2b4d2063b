package repository

import (
	"context"
	"time"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"

	"github.com/google/uuid"
)

// The upsert reclaims rows whose expiry has passed, so a claim left behind by
// a crashed request stops blocking the key after 24 hours.
const tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint          = EXCLUDED.endpoint,
    request_hash      = EXCLUDED.request_hash,
    status            = 'processing',
    result_booking_id = NULL,
    expires_at        = EXCLUDED.expires_at,
    updated_at        = now()
WHERE idempotency_keys.expires_at < now()`

const markIdempotencyCompletedSQL = `
UPDATE idempotency_keys
SET status = 'completed', result_booking_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2`

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

func (r *IdempotencyRepository) TryInsert(
	ctx context.Context,
	dbtx db.DBTX,
	key, userID uuid.UUID,
	endpoint, requestHash string,
	expiresAt time.Time,
) (bool, error) {
	tag, err := dbtx.Exec(ctx, tryInsertIdempotencyKeySQL, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) MarkCompleted(
	ctx context.Context,
	dbtx db.DBTX,
	key, userID uuid.UUID,
	resultBookingID uuid.UUID,
) error {
	tag, err := dbtx.Exec(ctx, markIdempotencyCompletedSQL, key, userID, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}
