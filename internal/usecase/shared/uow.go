package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"hotel-booking/internal/domain/block"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	RoomTypes() RoomTypeRepository
	Bookings() BookingRepository
	Blocks() BlockRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	Occupancy(ctx context.Context, roomTypeID string, query period.Period) (*OccupancySnapshot, error)
}

type RoomTypeRepository interface {
	// LockByID takes a row lock held until the transaction ends.
	LockByID(ctx context.Context, tx sqlc.DBTX, id string) (*roomtype.RoomType, error)
	Count(ctx context.Context, tx sqlc.DBTX) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) error
	AcquireSeedLock(ctx context.Context, tx sqlc.DBTX) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	MarkCancelled(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type BlockRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *block.BlockedBooking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}
