//go:build unit

package commands_test

import (
	"context"
	"testing"

	"driveshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*fakeStore, commands.LedgerCommands, uuid.UUID) {
		store := newFakeStore()
		userID := uuid.New()
		store.balances[userID] = 2500

		lc := commands.NewLedgerCommands(newFakeUoW(store), &fakeLedgerQueries{store: store})
		return store, lc, userID
	}

	t.Run("adds funds and returns the new balance", func(t *testing.T) {
		store, lc, userID := newFixture()

		view, err := lc.Deposit(ctx, userID, 10000)
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, userID, view.UserID)
		assert.Equal(t, int64(12500), view.BalanceCents)
		assert.Equal(t, int64(12500), store.balances[userID])
	})

	t.Run("deposits accumulate", func(t *testing.T) {
		store, lc, userID := newFixture()

		_, err := lc.Deposit(ctx, userID, 100)
		require.NoError(t, err)
		view, err := lc.Deposit(ctx, userID, 250)
		require.NoError(t, err)

		assert.Equal(t, int64(2850), view.BalanceCents)
		assert.Equal(t, int64(2850), store.balances[userID])
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		store, lc, userID := newFixture()

		for _, amount := range []int64{0, -1, -5000} {
			view, err := lc.Deposit(ctx, userID, amount)
			require.ErrorIs(t, err, commands.ErrInvalidDepositAmount)
			assert.Nil(t, view)
		}
		assert.Equal(t, int64(2500), store.balances[userID])
	})

	t.Run("unknown account", func(t *testing.T) {
		_, lc, _ := newFixture()

		view, err := lc.Deposit(ctx, uuid.New(), 10000)
		require.ErrorIs(t, err, commands.ErrAccountNotFound)
		assert.Nil(t, view)
	})
}
