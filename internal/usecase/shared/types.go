package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep command code off the read-side view types.
type CarSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Model          string
	Location       string
	DailyRateCents int64
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
