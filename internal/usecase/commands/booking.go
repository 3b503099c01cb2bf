package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomTypeID string
	Stay       period.Period
	Guests     int
	Contact    booking.Contact
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actor shared.AdminIdentity) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
	mode      availability.Mode
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher, mode availability.Mode) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
		mode:      mode,
	}
}

// CreateBooking runs the admission check and the insert in one transaction.
// The room type row lock serializes concurrent admissions for the same room
// type, so two requests can never both take the last unit.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().LockByID(ctx, tx.DB(), req.RoomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomTypeNotFound)
			}
			return err
		}

		b, err := booking.New(uc.clock, rt, req.Stay, req.Guests, req.Contact)
		if err != nil {
			return markBookingDomainErr(err)
		}

		snap, err := tx.Reads().Occupancy(ctx, rt.ID(), req.Stay)
		if err != nil {
			return err
		}

		occ := availability.Aggregate(rt.ID(), rt.TotalUnits(), req.Stay, snap.Holds, snap.Stays, uc.mode)
		if err := occ.Admit(); err != nil {
			return errs.Mark(err, ErrNoAvailability)
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking confirmed",
		"booking_id", created.ID().String(),
		"room_type", created.RoomTypeID(),
		"nights", created.Nights())
	publish(ctx, uc.publisher, bookingEvent(shared.EventBookingConfirmed, created, uc.clock))
	return created, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, actor shared.AdminIdentity) (*booking.Booking, error) {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		if err := b.Cancel(uc.clock); err != nil {
			if errors.Is(err, booking.ErrAlreadyCancelled) {
				return errs.Mark(err, ErrBookingAlreadyCancelled)
			}
			return err
		}

		if err := tx.Bookings().MarkCancelled(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrBookingAlreadyCancelled)
			}
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled",
		"booking_id", cancelled.ID().String(),
		"by", actor.Username)
	publish(ctx, uc.publisher, bookingEvent(shared.EventBookingCancelled, cancelled, uc.clock))
	return cancelled, nil
}
