package shared

//go:generate mockgen -source=events.go -destination=../../../tests/mock/shared/events_mock.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       uuid.UUID `json:"bookingId"`
	RoomType        string    `json:"roomType"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// EventPublisher delivers events after commit. Delivery is best effort;
// callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
