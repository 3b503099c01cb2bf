//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOccupancyReadQueries struct {
	mock.Mock
}

func (m *MockOccupancyReadQueries) ListOverlappingBlockedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingBlockedBookingsParams) ([]sqlc.BlockedBookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.BlockedBookings), args.Error(1)
}

func (m *MockOccupancyReadQueries) ListOverlappingConfirmedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingConfirmedBookingsParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func TestOccupancyLoad(t *testing.T) {
	query := period.Reconstruct(
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
	)
	blockRow := builder.NewBlockBuilder().BuildInfra()
	bookingRow := builder.NewBookingBuilder().BuildInfra()

	matchesRange := func(roomType string, start, end time.Time) func(any) bool {
		return func(arg any) bool {
			switch p := arg.(type) {
			case sqlc.ListOverlappingBlockedBookingsParams:
				return p.RoomType == roomType && p.RangeStart.Time.Equal(start) && p.RangeEnd.Time.Equal(end)
			case sqlc.ListOverlappingConfirmedBookingsParams:
				return p.RoomType == roomType && p.RangeStart.Time.Equal(start) && p.RangeEnd.Time.Equal(end)
			}
			return false
		}
	}

	tests := []struct {
		name       string
		blocksErr  error
		bookingErr error
		wantError  bool
	}{
		{name: "success"},
		{name: "blocks query fails", blocksErr: assert.AnError, wantError: true},
		{name: "bookings query fails", bookingErr: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOccupancyReadQueries)
			inRange := mock.MatchedBy(matchesRange("double-1", query.Start(), query.End()))
			mockQueries.On("ListOverlappingBlockedBookings", mock.Anything, mock.Anything, inRange).
				Return([]sqlc.BlockedBookings{blockRow}, tt.blocksErr)
			if tt.blocksErr == nil {
				mockQueries.On("ListOverlappingConfirmedBookings", mock.Anything, mock.Anything, inRange).
					Return([]sqlc.Bookings{bookingRow}, tt.bookingErr)
			}

			snap, err := NewOccupancyReadStore(mockQueries, nil).Load(context.Background(), "double-1", query)

			if tt.wantError {
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				require.Len(t, snap.Holds, 1)
				require.Len(t, snap.Stays, 1)
				assert.Equal(t, "101", snap.Holds[0].Unit)
				assert.True(t, snap.Holds[0].Stay.Overlaps(query))
				assert.True(t, snap.Stays[0].Confirmed)
				assert.Equal(t, 3, snap.Stays[0].Period.Nights())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
