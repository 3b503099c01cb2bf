//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityCheck(t *testing.T) {
	ctx := context.Background()
	query := period.Reconstruct(day(10), day(13))
	double := builder.NewRoomTypeBuilder().BuildView()

	snapshot := &shared.OccupancySnapshot{
		Holds: []availability.Hold{
			{Unit: "101", Stay: period.Reconstruct(day(9), day(11))},
			{Unit: "101", Stay: period.Reconstruct(day(12), day(14))},
			{Unit: "102", Stay: period.Reconstruct(day(11), day(12))},
		},
		Stays: []availability.Stay{
			{Period: period.Reconstruct(day(10), day(12)), Confirmed: true},
			{Period: period.Reconstruct(day(10), day(12)), Confirmed: false},
		},
	}

	testCases := []struct {
		name   string
		mode   availability.Mode
		expect *queries.AvailabilityView
	}{
		{
			name: "strict subtracts distinct blocked units and confirmed bookings",
			mode: availability.ModeStrict,
			expect: &queries.AvailabilityView{
				RoomType: "double-1", TotalUnits: 5, BlockedUnits: 2, BookedUnits: 1, AvailableUnits: 2,
			},
		},
		{
			name: "legacy only subtracts blocked units",
			mode: availability.ModeLegacyBlocksOnly,
			expect: &queries.AvailabilityView{
				RoomType: "double-1", TotalUnits: 5, BlockedUnits: 2, BookedUnits: 1, AvailableUnits: 3,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rooms := queriesmock.NewMockRoomQueries(ctrl)
			occupancy := queriesmock.NewMockOccupancyReadStore(ctrl)

			rooms.EXPECT().GetRoomType(gomock.Any(), "double-1").Return(double, nil)
			occupancy.EXPECT().Load(gomock.Any(), "double-1", query).Return(snapshot, nil)

			actual, err := queries.NewAvailabilityQueries(rooms, occupancy, tc.mode).Check(ctx, "double-1", query)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expect, actual); diff != "" {
				t.Errorf("availability mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("unknown room type is returned before loading occupancy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomQueries(ctrl)
		occupancy := queriesmock.NewMockOccupancyReadStore(ctrl)

		rooms.EXPECT().GetRoomType(gomock.Any(), "nope").
			Return(nil, errs.Mark(infra.WrapRepoErr("room type not found", nil, infra.KindNotFound), queries.ErrRoomTypeNotFound))

		_, err := queries.NewAvailabilityQueries(rooms, occupancy, availability.ModeStrict).Check(ctx, "nope", query)
		assert.True(t, errs.Is(err, queries.ErrRoomTypeNotFound))
	})

	t.Run("occupancy failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomQueries(ctrl)
		occupancy := queriesmock.NewMockOccupancyReadStore(ctrl)
		boom := errors.New("boom")

		rooms.EXPECT().GetRoomType(gomock.Any(), "double-1").Return(double, nil)
		occupancy.EXPECT().Load(gomock.Any(), "double-1", query).Return(nil, boom)

		_, err := queries.NewAvailabilityQueries(rooms, occupancy, availability.ModeStrict).Check(ctx, "double-1", query)
		assert.ErrorIs(t, err, boom)
	})
}
