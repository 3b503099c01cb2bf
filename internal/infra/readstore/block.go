package readstore

//go:generate mockgen -source=block.go -destination=../../../tests/mock/readstore/block_mock.go -package=readstoremock

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockReadQueries interface {
	GetBlockedBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BlockedBookings, error)
	ListBlockedBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.BlockedBookings, error)
}

type BlockReadStore struct {
	queries BlockReadQueries
	db      sqlc.DBTX
}

func NewBlockReadStore(queries BlockReadQueries, db sqlc.DBTX) *BlockReadStore {
	return &BlockReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlockReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BlockView, error) {
	row, err := r.queries.GetBlockedBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blocked booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get blocked booking by id", err)
	}
	return toBlockView(row), nil
}

func (r *BlockReadStore) FindAll(ctx context.Context) ([]*queries.BlockView, error) {
	rows, err := r.queries.ListBlockedBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked bookings", err)
	}

	result := make([]*queries.BlockView, len(rows))
	for i, row := range rows {
		result[i] = toBlockView(row)
	}
	return result, nil
}

func toBlockView(row sqlc.BlockedBookings) *queries.BlockView {
	return &queries.BlockView{
		ID:         row.ID,
		RoomID:     row.RoomID,
		RoomTypeID: row.RoomType,
		RoomName:   row.RoomName,
		RoomUnit:   row.RoomUnit,
		CheckIn:    pgconv.TimeFromPgtype(row.CheckIn),
		CheckOut:   pgconv.TimeFromPgtype(row.CheckOut),
		Reason:     row.Reason,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
