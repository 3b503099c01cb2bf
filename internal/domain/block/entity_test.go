//go:build unit

package block_test

import (
	"testing"

	"hotel-booking/internal/domain/block"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedBooking(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		actual, err := builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.RoomName = ""
			b.Reason = nil
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Double Room", actual.RoomName())
		assert.Equal(t, block.DefaultReason, actual.Reason())
		assert.Equal(t, "double-1", actual.RoomTypeID())
	})

	t.Run("explicit reason and name are kept", func(t *testing.T) {
		reason := "Maintenance"
		actual, err := builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.RoomName = "Double Room 101"
			b.Reason = &reason
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Double Room 101", actual.RoomName())
		assert.Equal(t, "Maintenance", actual.Reason())
	})

	t.Run("unit is required", func(t *testing.T) {
		_, err := builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.RoomUnit = " "
		}).BuildDomain()
		assert.ErrorIs(t, err, block.ErrUnitRequired)
	})

	t.Run("room id is required", func(t *testing.T) {
		_, err := builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.RoomID = ""
		}).BuildDomain()
		assert.ErrorIs(t, err, block.ErrRoomIDRequired)
	})
}
