package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

const publishTimeout = 3 * time.Second

func bookingEvent(eventType string, b *booking.Booking, clk clock.Clock) shared.BookingEvent {
	return shared.BookingEvent{
		Type:            eventType,
		BookingID:       b.ID(),
		RoomType:        b.RoomTypeID(),
		CheckIn:         b.Stay().Start(),
		CheckOut:        b.Stay().End(),
		Guests:          b.Guests(),
		TotalPriceCents: b.TotalPriceCents(),
		Status:          b.Status().String(),
		OccurredAt:      clk.Now(),
	}
}

// publish never fails the request; the booking is already committed.
func publish(ctx context.Context, pub shared.EventPublisher, event shared.BookingEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := pub.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID.String(),
			"error", err.Error())
	}
}
