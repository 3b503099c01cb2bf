package repository

//go:generate mockgen -source=block.go -destination=../../../tests/mock/repository/block_mock.go -package=repositorymock

import (
	"context"

	"hotel-booking/internal/domain/block"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BlockWriteQueries interface {
	CreateBlockedBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedBookingParams) error
	DeleteBlockedBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BlockRepository struct {
	queries BlockWriteQueries
}

func NewBlockRepository(queries BlockWriteQueries) *BlockRepository {
	return &BlockRepository{queries: queries}
}

func (r *BlockRepository) Create(ctx context.Context, tx sqlc.DBTX, b *block.BlockedBooking) error {
	if err := r.queries.CreateBlockedBooking(ctx, tx, converter.BlockToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create blocked booking", err)
	}
	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBlockedBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("blocked booking not found", nil, infra.KindNotFound)
	}
	return nil
}
