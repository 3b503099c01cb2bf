//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/block"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockBuilder struct {
	RoomType roomtype.Params
	RoomID   string
	RoomName string
	RoomUnit string
	Reason   *string
	CheckIn  time.Time
	CheckOut time.Time
	Now      time.Time
}

func NewBlockBuilder() *BlockBuilder {
	reason := "Maintenance"
	return &BlockBuilder{
		RoomType: roomtype.InitialCatalog()[0],
		RoomID:   "double-1",
		RoomName: "Double Room 101",
		RoomUnit: "101",
		Reason:   &reason,
		CheckIn:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Now:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BlockBuilder) With(mutate func(*BlockBuilder)) *BlockBuilder {
	mutate(b)
	return b
}

func (b *BlockBuilder) Stay() period.Period {
	return period.Reconstruct(b.CheckIn, b.CheckOut)
}

// Build methods
func (b *BlockBuilder) BuildDomain() (*block.BlockedBooking, error) {
	stay, err := period.New(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return block.New(clock.NewMockClock(b.Now), roomtype.Reconstruct(b.RoomType), block.Request{
		RoomID:   b.RoomID,
		RoomName: b.RoomName,
		RoomUnit: b.RoomUnit,
		Stay:     stay,
		Reason:   b.Reason,
	})
}

func (b *BlockBuilder) BuildCommand() commands.CreateBlockRequest {
	return commands.CreateBlockRequest{
		RoomID:     b.RoomID,
		RoomTypeID: b.RoomType.ID,
		RoomName:   b.RoomName,
		RoomUnit:   b.RoomUnit,
		Stay:       b.Stay(),
		Reason:     b.Reason,
	}
}

func (b *BlockBuilder) BuildCreateRequestDTO() reqdto.CreateBlockRequest {
	return reqdto.CreateBlockRequest{
		RoomID:   b.RoomID,
		RoomType: b.RoomType.ID,
		RoomName: b.RoomName,
		RoomUnit: b.RoomUnit,
		CheckIn:  b.CheckIn.Format(time.RFC3339),
		CheckOut: b.CheckOut.Format(time.RFC3339),
		Reason:   b.Reason,
	}
}

func (b *BlockBuilder) reason() string {
	return patch.TrimmedOr(b.Reason, block.DefaultReason)
}

func (b *BlockBuilder) BuildInfra() sqlc.BlockedBookings {
	return sqlc.BlockedBookings{
		ID:        uuid.New(),
		RoomID:    b.RoomID,
		RoomType:  b.RoomType.ID,
		RoomName:  b.RoomName,
		RoomUnit:  b.RoomUnit,
		CheckIn:   pgtype.Timestamptz{Time: b.CheckIn, Valid: true},
		CheckOut:  pgtype.Timestamptz{Time: b.CheckOut, Valid: true},
		Reason:    b.reason(),
		CreatedAt: pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *BlockBuilder) BuildView() *queries.BlockView {
	return &queries.BlockView{
		ID:         uuid.New(),
		RoomID:     b.RoomID,
		RoomTypeID: b.RoomType.ID,
		RoomName:   b.RoomName,
		RoomUnit:   b.RoomUnit,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Reason:     b.reason(),
		CreatedAt:  b.Now,
	}
}
