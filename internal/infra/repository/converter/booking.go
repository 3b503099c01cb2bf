package converter

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	contact := b.Contact()
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		RoomType:        b.RoomTypeID(),
		RoomName:        b.RoomName(),
		CheckIn:         pgconv.TimeToPgtype(b.Stay().Start()),
		CheckOut:        pgconv.TimeToPgtype(b.Stay().End()),
		Guests:          int32(b.Guests()), // #nosec G115 -- bounded by max guests
		FullName:        contact.FullName,
		Email:           contact.Email,
		Phone:           pgconv.StringPtrToPgtype(contact.Phone),
		Nights:          int32(b.Nights()), // #nosec G115
		TotalPriceCents: b.TotalPriceCents(),
		Status:          b.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.Reconstruct(booking.Snapshot{
		ID:         row.ID,
		RoomTypeID: row.RoomType,
		RoomName:   row.RoomName,
		Stay:       period.Reconstruct(pgconv.TimeFromPgtype(row.CheckIn), pgconv.TimeFromPgtype(row.CheckOut)),
		Guests:     int(row.Guests),
		Contact: booking.Contact{
			FullName: row.FullName,
			Email:    row.Email,
			Phone:    pgconv.StringPtrFromPgtype(row.Phone),
		},
		Nights:          int(row.Nights),
		TotalPriceCents: row.TotalPriceCents,
		Status:          booking.Status(row.Status),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
	})
}
