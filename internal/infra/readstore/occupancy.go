package readstore

//go:generate mockgen -source=occupancy.go -destination=../../../tests/mock/readstore/occupancy_mock.go -package=readstoremock

import (
	"context"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"
)

type OccupancyReadQueries interface {
	ListOverlappingBlockedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingBlockedBookingsParams) ([]sqlc.BlockedBookings, error)
	ListOverlappingConfirmedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingConfirmedBookingsParams) ([]sqlc.Bookings, error)
}

// OccupancyReadStore loads the holds and stays overlapping a query period.
// The SQL pre-filters by overlap; the aggregator re-checks with the same
// half-open predicate.
type OccupancyReadStore struct {
	queries OccupancyReadQueries
	db      sqlc.DBTX
}

func NewOccupancyReadStore(queries OccupancyReadQueries, db sqlc.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OccupancyReadStore) Load(ctx context.Context, roomTypeID string, query period.Period) (*shared.OccupancySnapshot, error) {
	start := pgconv.TimeToPgtype(query.Start())
	end := pgconv.TimeToPgtype(query.End())

	blocks, err := r.queries.ListOverlappingBlockedBookings(ctx, r.db, sqlc.ListOverlappingBlockedBookingsParams{
		RoomType:   roomTypeID,
		RangeEnd:   end,
		RangeStart: start,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load overlapping blocks", err)
	}

	bookings, err := r.queries.ListOverlappingConfirmedBookings(ctx, r.db, sqlc.ListOverlappingConfirmedBookingsParams{
		RoomType:   roomTypeID,
		RangeEnd:   end,
		RangeStart: start,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load overlapping bookings", err)
	}

	snap := &shared.OccupancySnapshot{
		Holds: make([]availability.Hold, len(blocks)),
		Stays: make([]availability.Stay, len(bookings)),
	}
	for i, b := range blocks {
		snap.Holds[i] = availability.Hold{
			Unit: b.RoomUnit,
			Stay: period.Reconstruct(pgconv.TimeFromPgtype(b.CheckIn), pgconv.TimeFromPgtype(b.CheckOut)),
		}
	}
	for i, b := range bookings {
		snap.Stays[i] = availability.Stay{
			Period:    period.Reconstruct(pgconv.TimeFromPgtype(b.CheckIn), pgconv.TimeFromPgtype(b.CheckOut)),
			Confirmed: b.Status == booking.StatusConfirmed.String(),
		}
	}
	return snap, nil
}
