//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	RoomType roomtype.Params
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	FullName string
	Email    string
	Phone    *string
	Now      time.Time
}

// three nights in the double room for one guest
func NewBookingBuilder() *BookingBuilder {
	phone := "+81-90-0000-0000"
	return &BookingBuilder{
		RoomType: roomtype.InitialCatalog()[0],
		CheckIn:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		Guests:   1,
		FullName: "Hanako Yamada",
		Email:    "hanako@example.com",
		Phone:    &phone,
		Now:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() period.Period {
	return period.Reconstruct(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) contact() booking.Contact {
	return booking.Contact{FullName: b.FullName, Email: b.Email, Phone: b.Phone}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := period.New(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.New(clock.NewMockClock(b.Now), roomtype.Reconstruct(b.RoomType), stay, b.Guests, b.contact())
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomTypeID: b.RoomType.ID,
		Stay:       b.Stay(),
		Guests:     b.Guests,
		Contact:    b.contact(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomType: b.RoomType.ID,
		CheckIn:  b.CheckIn.Format(time.RFC3339),
		CheckOut: b.CheckOut.Format(time.RFC3339),
		Guests:   reqdto.GuestCount(b.Guests),
		FullName: b.FullName,
		Email:    b.Email,
		Phone:    b.Phone,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	nights := b.Stay().Nights()
	row := sqlc.Bookings{
		ID:              uuid.New(),
		RoomType:        b.RoomType.ID,
		RoomName:        b.RoomType.Name,
		CheckIn:         pgtype.Timestamptz{Time: b.CheckIn, Valid: true},
		CheckOut:        pgtype.Timestamptz{Time: b.CheckOut, Valid: true},
		Guests:          int32(b.Guests),
		FullName:        b.FullName,
		Email:           b.Email,
		Nights:          int32(nights),
		TotalPriceCents: int64(nights) * b.RoomType.PriceCents,
		Status:          string(booking.StatusConfirmed),
		CreatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
	if b.Phone != nil {
		row.Phone = pgtype.Text{String: *b.Phone, Valid: true}
	}
	return row
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := b.Stay().Nights()
	return &queries.BookingView{
		ID:              uuid.New(),
		RoomTypeID:      b.RoomType.ID,
		RoomName:        b.RoomType.Name,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		Nights:          nights,
		TotalPriceCents: int64(nights) * b.RoomType.PriceCents,
		Status:          string(booking.StatusConfirmed),
		CreatedAt:       b.Now,
	}
}
