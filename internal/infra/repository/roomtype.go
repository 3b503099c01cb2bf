package repository

//go:generate mockgen -source=roomtype.go -destination=../../../tests/mock/repository/roomtype_mock.go -package=repositorymock

import (
	"context"

	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

// seedLockKey identifies the advisory lock serializing catalog seeding
// across replicas.
const seedLockKey int64 = 0x686f74656c01

type RoomTypeWriteQueries interface {
	LockRoomTypeByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.RoomTypes, error)
	CountRoomTypes(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomTypeParams) error
	AcquireXactLock(ctx context.Context, db sqlc.DBTX, lockKey int64) error
}

type RoomTypeRepository struct {
	queries RoomTypeWriteQueries
}

func NewRoomTypeRepository(queries RoomTypeWriteQueries) *RoomTypeRepository {
	return &RoomTypeRepository{queries: queries}
}

func (r *RoomTypeRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id string) (*roomtype.RoomType, error) {
	row, err := r.queries.LockRoomTypeByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room type", err)
	}
	return converter.RoomTypeFromRow(row), nil
}

func (r *RoomTypeRepository) Count(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountRoomTypes(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count room types", err)
	}
	return n, nil
}

func (r *RoomTypeRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) error {
	if err := r.queries.CreateRoomType(ctx, tx, converter.RoomTypeToCreateParams(rt)); err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) AcquireSeedLock(ctx context.Context, tx sqlc.DBTX) error {
	if err := r.queries.AcquireXactLock(ctx, tx, seedLockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire seed lock", err)
	}
	return nil
}
