package converter

import (
	"hotel-booking/internal/domain/block"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func BlockToCreateParams(b *block.BlockedBooking) sqlc.CreateBlockedBookingParams {
	return sqlc.CreateBlockedBookingParams{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		RoomType:  b.RoomTypeID(),
		RoomName:  b.RoomName(),
		RoomUnit:  b.RoomUnit(),
		CheckIn:   pgconv.TimeToPgtype(b.Stay().Start()),
		CheckOut:  pgconv.TimeToPgtype(b.Stay().End()),
		Reason:    b.Reason(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}
