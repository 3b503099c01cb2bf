package commands

import (
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrRoomTypeNotFound        = errs.New("room type not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBlockNotFound           = errs.New("blocked booking not found")
	ErrNoAvailability          = errs.New("no rooms available for selected dates")
	ErrInvalidInterval         = errs.New("invalid stay interval")
	ErrInvalidBooking          = errs.New("invalid booking request")
	ErrInvalidBlock            = errs.New("invalid block request")
	ErrBookingAlreadyCancelled = errs.New("booking is already cancelled")
	ErrInvalidCredentials      = errs.New("invalid credentials")
	ErrTokenGeneration         = errs.New("token generation failed")
)

func markBookingDomainErr(err error) error {
	switch {
	case errors.Is(err, period.ErrInvalidInterval), errors.Is(err, booking.ErrStayTooShort):
		return errs.Mark(err, ErrInvalidInterval)
	case errors.Is(err, roomtype.ErrGuestLimit), errors.Is(err, booking.ErrInvalidContact):
		return errs.Mark(err, ErrInvalidBooking)
	default:
		return err
	}
}
