package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CarView struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Mileage        int       `json:"mileage"`
	Location       string    `json:"location"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CarQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	// Search matches listings whose location contains the given fragment;
	// an empty fragment returns all listings.
	Search(ctx context.Context, location string) ([]*CarView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CarView, error)
}

type CarReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	SearchByLocation(ctx context.Context, location string) ([]*CarView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CarView, error)
}

type carQueriesImpl struct {
	store CarReadStore
}

func NewCarQueries(store CarReadStore) CarQueries {
	return &carQueriesImpl{store: store}
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *carQueriesImpl) Search(ctx context.Context, location string) ([]*CarView, error) {
	return q.store.SearchByLocation(ctx, location)
}

func (q *carQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CarView, error) {
	return q.store.FindByOwner(ctx, ownerID)
}
