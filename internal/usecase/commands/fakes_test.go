//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/car"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database. Within serializes
// callers on one mutex, which models the car row lock: two transactions on
// the same store never interleave. Mutations are applied to a copy and only
// merged back when the transaction function succeeds, so a failed
// transaction leaves the store untouched.
type fakeStore struct {
	mu       sync.Mutex
	clk      *clock.MockClock
	cars     map[uuid.UUID]*shared.CarSnapshot
	balances map[uuid.UUID]int64
	bookings map[uuid.UUID]*booking.Booking
	idem     map[string]*shared.IdempotencyRecord

	// injected faults
	createBookingErr error
	debitErr         error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clk:      clock.NewMockClock(testNow),
		cars:     make(map[uuid.UUID]*shared.CarSnapshot),
		balances: make(map[uuid.UUID]int64),
		bookings: make(map[uuid.UUID]*booking.Booking),
		idem:     make(map[string]*shared.IdempotencyRecord),
	}
}

func idemKey(key, userID uuid.UUID) string {
	return key.String() + "/" + userID.String()
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.clk = s.clk
	c.createBookingErr = s.createBookingErr
	c.debitErr = s.debitErr
	for k, v := range s.cars {
		c.cars[k] = v
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.idem {
		rec := *v
		c.idem[k] = &rec
	}
	return c
}

func (s *fakeStore) adopt(c *fakeStore) {
	s.cars = c.cars
	s.balances = c.balances
	s.bookings = c.bookings
	s.idem = c.idem
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	working := u.store.clone()
	if err := fn(ctx, &fakeTx{store: working}); err != nil {
		return err
	}

	u.store.adopt(working)
	return nil
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeCommandReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Cars() shared.CarRepository                { return &fakeCarRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository        { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Ledger() shared.LedgerRepository           { return &fakeLedgerRepo{store: t.store} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository { return &fakeIdemRepo{store: t.store} }
func (t *fakeTx) DB() db.DBTX                               { return nil }

type fakeCarRepo struct {
	store *fakeStore
}

func (r *fakeCarRepo) Create(_ context.Context, _ db.DBTX, c *car.Car) (uuid.UUID, error) {
	r.store.cars[c.ID()] = &shared.CarSnapshot{
		ID:             c.ID(),
		OwnerID:        c.OwnerID(),
		Model:          c.Model(),
		Location:       c.Location(),
		DailyRateCents: c.DailyRate().Cents(),
	}
	return c.ID(), nil
}

func (r *fakeCarRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.CarSnapshot, error) {
	snap, ok := r.store.cars[id]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if err := r.store.createBookingErr; err != nil {
		return uuid.Nil, err
	}
	r.store.bookings[b.ID()] = b
	return b.ID(), nil
}

func (r *fakeBookingRepo) ActiveRangesByCar(_ context.Context, _ db.DBTX, carID uuid.UUID) ([]booking.DateRange, error) {
	var ranges []booking.DateRange
	for _, b := range r.store.bookings {
		if b.CarID() == carID && b.IsActive() {
			ranges = append(ranges, b.Dates())
		}
	}
	return ranges, nil
}

type fakeLedgerRepo struct {
	store *fakeStore
}

func (r *fakeLedgerRepo) BalanceForUpdate(_ context.Context, _ db.DBTX, userID uuid.UUID) (booking.Money, error) {
	cents, ok := r.store.balances[userID]
	if !ok {
		return booking.Money{}, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return booking.NewMoney(cents), nil
}

func (r *fakeLedgerRepo) Debit(_ context.Context, _ db.DBTX, userID uuid.UUID, amount booking.Money) error {
	if err := r.store.debitErr; err != nil {
		return err
	}
	cents, ok := r.store.balances[userID]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	if cents < amount.Cents() {
		return infra.WrapRepoErr("insufficient funds", nil, infra.KindInsufficientFunds)
	}
	r.store.balances[userID] = cents - amount.Cents()
	return nil
}

func (r *fakeLedgerRepo) Credit(_ context.Context, _ db.DBTX, userID uuid.UUID, amount booking.Money) error {
	cents, ok := r.store.balances[userID]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	r.store.balances[userID] = cents + amount.Cents()
	return nil
}

type fakeIdemRepo struct {
	store *fakeStore
}

func (r *fakeIdemRepo) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, _, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey(key, userID)
	if rec, exists := r.store.idem[k]; exists && rec.ExpiresAt.After(r.store.clk.Now()) {
		return false, nil
	}
	r.store.idem[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *fakeIdemRepo) MarkCompleted(_ context.Context, _ db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error {
	rec, ok := r.store.idem[idemKey(key, userID)]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = "completed"
	id := resultBookingID
	rec.ResultBookingID = &id
	return nil
}

type fakeCommandReads struct {
	store *fakeStore
}

func (r *fakeCommandReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.idem[idemKey(key, userID)]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	copied := *rec
	return &copied, nil
}

// fakeBookingQueries serves the read-after-write lookup straight from the
// store's write side.
type fakeBookingQueries struct {
	store *fakeStore
}

func (q *fakeBookingQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	b, ok := q.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	view := &queries.BookingView{
		ID:         b.ID(),
		CarID:      b.CarID(),
		RenterID:   b.RenterID(),
		OwnerID:    b.OwnerID(),
		StartDate:  b.Dates().Start(),
		EndDate:    b.Dates().End(),
		Status:     b.Status().String(),
		PriceCents: b.Price().Cents(),
	}
	if snap, ok := q.store.cars[b.CarID()]; ok {
		view.CarModel = snap.Model
	}
	return view, nil
}

func (q *fakeBookingQueries) ListByRenter(_ context.Context, renterID uuid.UUID) ([]*queries.BookingListItem, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var items []*queries.BookingListItem
	for _, b := range q.store.bookings {
		if b.RenterID() == renterID {
			items = append(items, q.listItem(b))
		}
	}
	return items, nil
}

func (q *fakeBookingQueries) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.BookingListItem, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var items []*queries.BookingListItem
	for _, b := range q.store.bookings {
		if b.OwnerID() == ownerID {
			items = append(items, q.listItem(b))
		}
	}
	return items, nil
}

func (q *fakeBookingQueries) listItem(b *booking.Booking) *queries.BookingListItem {
	item := &queries.BookingListItem{
		ID:         b.ID(),
		CarID:      b.CarID(),
		StartDate:  b.Dates().Start(),
		EndDate:    b.Dates().End(),
		Status:     b.Status().String(),
		PriceCents: b.Price().Cents(),
	}
	if snap, ok := q.store.cars[b.CarID()]; ok {
		item.CarModel = snap.Model
	}
	return item
}

// fakeCarQueries and fakeLedgerQueries back the read-after-write paths of the
// car and ledger commands.
type fakeCarQueries struct {
	store *fakeStore
}

func (q *fakeCarQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.CarView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	snap, ok := q.store.cars[id]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return &queries.CarView{
		ID:             snap.ID,
		OwnerID:        snap.OwnerID,
		Model:          snap.Model,
		Location:       snap.Location,
		DailyRateCents: snap.DailyRateCents,
	}, nil
}

func (q *fakeCarQueries) Search(_ context.Context, _ string) ([]*queries.CarView, error) {
	return nil, nil
}

func (q *fakeCarQueries) ListByOwner(_ context.Context, _ uuid.UUID) ([]*queries.CarView, error) {
	return nil, nil
}

type fakeLedgerQueries struct {
	store *fakeStore
}

func (q *fakeLedgerQueries) Balance(_ context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	cents, ok := q.store.balances[userID]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &queries.BalanceView{UserID: userID, BalanceCents: cents}, nil
}
