package commands

//go:generate mockgen -source=block.go -destination=../../../tests/mock/commands/block_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/block"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBlockRequest struct {
	RoomID     string
	RoomTypeID string
	RoomName   string
	RoomUnit   string
	Stay       period.Period
	Reason     *string
}

type BlockCommands interface {
	CreateBlock(ctx context.Context, req CreateBlockRequest, actor shared.AdminIdentity) (*block.BlockedBooking, error)
	DeleteBlock(ctx context.Context, id uuid.UUID, actor shared.AdminIdentity) error
}

type blockUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlockUseCase(uow shared.UnitOfWork, clk clock.Clock) BlockCommands {
	return &blockUseCaseImpl{uow: uow, clock: clk}
}

// CreateBlock takes the same room type lock as booking admission so a block
// and a booking for the last unit cannot interleave. Blocks are admin
// overrides and are never rejected for lack of availability.
func (uc *blockUseCaseImpl) CreateBlock(ctx context.Context, req CreateBlockRequest, actor shared.AdminIdentity) (*block.BlockedBooking, error) {
	var created *block.BlockedBooking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().LockByID(ctx, tx.DB(), req.RoomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomTypeNotFound)
			}
			return err
		}

		b, err := block.New(uc.clock, rt, block.Request{
			RoomID:   req.RoomID,
			RoomName: req.RoomName,
			RoomUnit: req.RoomUnit,
			Stay:     req.Stay,
			Reason:   req.Reason,
		})
		if err != nil {
			if errors.Is(err, block.ErrUnitRequired) || errors.Is(err, block.ErrRoomIDRequired) {
				return errs.Mark(err, ErrInvalidBlock)
			}
			return err
		}

		if err := tx.Blocks().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "room unit blocked",
		"block_id", created.ID().String(),
		"room_type", created.RoomTypeID(),
		"room_unit", created.RoomUnit(),
		"by", actor.Username)
	return created, nil
}

func (uc *blockUseCaseImpl) DeleteBlock(ctx context.Context, id uuid.UUID, actor shared.AdminIdentity) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Blocks().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBlockNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "room unit unblocked", "block_id", id.String(), "by", actor.Username)
	return nil
}
