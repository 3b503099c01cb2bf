package booking

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrStayTooShort     = errors.New("stay must cover at least one night")
	ErrInvalidContact   = errors.New("full name and email are required")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type Booking struct {
	id              uuid.UUID
	roomTypeID      string
	roomName        string
	stay            period.Period
	guests          int
	contact         Contact
	nights          int
	totalPriceCents int64
	status          Status
	createdAt       time.Time
	cancelledAt     *time.Time
}

// New snapshots the room name and nightly price; later catalog edits never
// change an existing booking.
func New(clk clock.Clock, rt *roomtype.RoomType, stay period.Period, guests int, contact Contact) (*Booking, error) {
	nights := stay.Nights()
	if nights < 1 {
		return nil, ErrStayTooShort
	}
	if err := rt.ValidateGuests(guests); err != nil {
		return nil, err
	}
	contact.FullName = strings.TrimSpace(contact.FullName)
	contact.Email = strings.TrimSpace(contact.Email)
	if contact.FullName == "" || contact.Email == "" {
		return nil, ErrInvalidContact
	}
	if contact.Phone != nil && strings.TrimSpace(*contact.Phone) == "" {
		contact.Phone = nil
	}

	return &Booking{
		id:              uuid.New(),
		roomTypeID:      rt.ID(),
		roomName:        rt.Name(),
		stay:            stay,
		guests:          guests,
		contact:         contact,
		nights:          nights,
		totalPriceCents: int64(nights) * rt.PriceCents(),
		status:          StatusConfirmed,
		createdAt:       clk.Now(),
	}, nil
}

type Snapshot struct {
	ID              uuid.UUID
	RoomTypeID      string
	RoomName        string
	Stay            period.Period
	Guests          int
	Contact         Contact
	Nights          int
	TotalPriceCents int64
	Status          Status
	CreatedAt       time.Time
	CancelledAt     *time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:              s.ID,
		roomTypeID:      s.RoomTypeID,
		roomName:        s.RoomName,
		stay:            s.Stay,
		guests:          s.Guests,
		contact:         s.Contact,
		nights:          s.Nights,
		totalPriceCents: s.TotalPriceCents,
		status:          s.Status,
		createdAt:       s.CreatedAt,
		cancelledAt:     s.CancelledAt,
	}
}

// Cancel releases the booking's unit. The record is kept.
func (b *Booking) Cancel(clk clock.Clock) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.status != StatusConfirmed {
		return ErrInvalidStatus
	}
	now := clk.Now()
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) RoomTypeID() string      { return b.roomTypeID }
func (b *Booking) RoomName() string        { return b.roomName }
func (b *Booking) Stay() period.Period     { return b.stay }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) Contact() Contact        { return b.contact }
func (b *Booking) Nights() int             { return b.nights }
func (b *Booking) TotalPriceCents() int64  { return b.totalPriceCents }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:              b.id,
		RoomTypeID:      b.roomTypeID,
		RoomName:        b.roomName,
		Stay:            b.stay,
		Guests:          b.guests,
		Contact:         b.contact,
		Nights:          b.nights,
		TotalPriceCents: b.totalPriceCents,
		Status:          b.status,
		CreatedAt:       b.createdAt,
		CancelledAt:     b.cancelledAt,
	}
}
