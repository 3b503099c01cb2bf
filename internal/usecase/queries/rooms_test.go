//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomTypeReadStore(ctrl)
		views := []*queries.RoomTypeView{builder.NewRoomTypeBuilder().BuildView()}
		store.EXPECT().FindAll(gomock.Any()).Return(views, nil)

		actual, err := queries.NewRoomQueries(store).ListRoomTypes(ctx)
		require.NoError(t, err)
		assert.Equal(t, views, actual)
	})

	t.Run("missing room type maps to ErrRoomTypeNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomTypeReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), "nope").
			Return(nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound))

		_, err := queries.NewRoomQueries(store).GetRoomType(ctx, "nope")
		assert.True(t, errs.Is(err, queries.ErrRoomTypeNotFound))
	})
}
