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

func TestListCar(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*fakeStore, commands.CarCommands) {
		store := newFakeStore()
		cc := commands.NewCarCommands(newFakeUoW(store), &fakeCarQueries{store: store})
		return store, cc
	}

	validCmd := func() commands.ListCarCommand {
		return commands.ListCarCommand{
			OwnerID:        uuid.New(),
			Model:          "Honda Civic",
			Year:           2020,
			Mileage:        31000,
			Location:       "Chicago",
			DailyRateCents: 4500,
		}
	}

	t.Run("publishes the listing", func(t *testing.T) {
		store, cc := newFixture()
		cmd := validCmd()

		view, err := cc.ListCar(ctx, cmd)
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, cmd.OwnerID, view.OwnerID)
		assert.Equal(t, "Honda Civic", view.Model)
		assert.Equal(t, int64(4500), view.DailyRateCents)
		assert.Len(t, store.cars, 1)
	})

	t.Run("domain validation failures surface as invalid detail", func(t *testing.T) {
		store, cc := newFixture()

		cases := []struct {
			name   string
			mutate func(*commands.ListCarCommand)
		}{
			{"empty model", func(c *commands.ListCarCommand) { c.Model = "" }},
			{"empty location", func(c *commands.ListCarCommand) { c.Location = "" }},
			{"year out of range", func(c *commands.ListCarCommand) { c.Year = 1850 }},
			{"negative mileage", func(c *commands.ListCarCommand) { c.Mileage = -1 }},
			{"negative rate", func(c *commands.ListCarCommand) { c.DailyRateCents = -1 }},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				cmd := validCmd()
				c.mutate(&cmd)

				view, err := cc.ListCar(ctx, cmd)
				require.ErrorIs(t, err, commands.ErrInvalidCarDetail)
				assert.Nil(t, view)
			})
		}
		assert.Empty(t, store.cars)
	})
}
