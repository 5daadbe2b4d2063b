//go:build unit

package booking_test

import (
	"testing"

	"driveshare/internal/domain/booking"
	"driveshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.CarID, actual.CarID())
		assert.Equal(t, b.RenterID, actual.RenterID())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, booking.StatusBooked, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Equal(t, int64(15000), actual.Price().Cents())
		assert.Equal(t, 3, actual.Dates().Days())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithPriceCents(-1).BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewBookingBuilder()

		first, err1 := b.BuildDomain()
		second, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("cancelled booking is not active", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		dates, err := booking.NewDateRange(b.StartDate, b.EndDate)
		require.NoError(t, err)

		actual := booking.ReconstructBooking(
			b.ID, b.CarID, b.RenterID, b.OwnerID,
			dates, booking.StatusCancelled, booking.NewMoney(b.PriceCents),
			b.CreatedAt, b.CreatedAt,
		)
		assert.False(t, actual.IsActive())
	})
}
