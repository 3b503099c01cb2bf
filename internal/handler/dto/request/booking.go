package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
)

var ErrInvalidGuestCount = errs.New("guests must be a whole number")

// GuestCount accepts both 2 and "2"; the booking form posts its select
// value as a string.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "guests %q", data), ErrInvalidGuestCount)
	}
	*g = GuestCount(n)
	return nil
}

type CreateBookingRequest struct {
	RoomType string     `json:"roomType" binding:"required,roomslug"`
	CheckIn  string     `json:"checkIn" binding:"required"`
	CheckOut string     `json:"checkOut" binding:"required"`
	Guests   GuestCount `json:"guests" binding:"required,min=1"`
	FullName string     `json:"fullName" binding:"required,max=200"`
	Email    string     `json:"email" binding:"required,email,max=254"`
	Phone    *string    `json:"phone,omitempty" binding:"omitempty,max=50"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	stay, err := period.ParseRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		RoomTypeID: r.RoomType,
		Stay:       stay,
		Guests:     int(r.Guests),
		Contact: booking.Contact{
			FullName: r.FullName,
			Email:    r.Email,
			Phone:    r.Phone,
		},
	}, nil
}

type ListBookingsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}
