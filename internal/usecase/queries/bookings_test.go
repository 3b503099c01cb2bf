//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingViews(n int) []*queries.BookingView {
	views := make([]*queries.BookingView, n)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range views {
		views[i] = builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Now = base.Add(-time.Duration(i) * time.Minute)
		}).BuildView()
	}
	return views
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("no limit returns everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		views := bookingViews(3)
		store.EXPECT().FindAll(gomock.Any()).Return(views, nil)

		rows, next, err := queries.NewBookingQueries(store).List(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Nil(t, next)
	})

	t.Run("first page fetches one extra row to detect more", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		views := bookingViews(3)
		store.EXPECT().FindFirstPage(gomock.Any(), int32(3)).Return(views, nil)

		rows, next, err := queries.NewBookingQueries(store).List(ctx, nil, 2)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NotNil(t, next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, views[1].ID, id)
		assert.True(t, views[1].CreatedAt.Equal(createdAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		views := bookingViews(2)
		after := queries.EncodeAfterCursor(views[0].CreatedAt.Add(time.Minute), uuid.New())
		store.EXPECT().FindKeyset(gomock.Any(), gomock.Any(), gomock.Any(), int32(21)).Return(views, nil)

		rows, next, err := queries.NewBookingQueries(store).List(ctx, &queries.Cursor{After: after}, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).List(ctx, &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	_, err := queries.NewBookingQueries(store).GetByID(context.Background(), id)
	assert.True(t, errs.Is(err, queries.ErrBookingNotFound))
}

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	decodedAt, decodedID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))
	require.NoError(t, err)
	assert.True(t, ts.Equal(decodedAt))
	assert.Equal(t, id, decodedID)

	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
