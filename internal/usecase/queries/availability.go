package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

import (
	"context"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/usecase/shared"
)

type OccupancyReadStore interface {
	Load(ctx context.Context, roomTypeID string, query period.Period) (*shared.OccupancySnapshot, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, roomTypeID string, query period.Period) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	rooms     RoomQueries
	occupancy OccupancyReadStore
	mode      availability.Mode
}

func NewAvailabilityQueries(rooms RoomQueries, occupancy OccupancyReadStore, mode availability.Mode) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:     rooms,
		occupancy: occupancy,
		mode:      mode,
	}
}

// Check takes no locks; the answer is advisory and may be stale by the
// time a booking is attempted.
func (q *availabilityQueriesImpl) Check(ctx context.Context, roomTypeID string, query period.Period) (*AvailabilityView, error) {
	rt, err := q.rooms.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	snap, err := q.occupancy.Load(ctx, rt.ID, query)
	if err != nil {
		return nil, err
	}

	occ := availability.Aggregate(rt.ID, rt.TotalUnits, query, snap.Holds, snap.Stays, q.mode)
	return &AvailabilityView{
		RoomType:       occ.RoomType,
		TotalUnits:     occ.TotalUnits,
		BlockedUnits:   occ.BlockedUnits,
		BookedUnits:    occ.BookedUnits,
		AvailableUnits: occ.AvailableUnits,
	}, nil
}
