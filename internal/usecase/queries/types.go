package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomTypeView is also the Redis catalog cache payload.
type RoomTypeView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	TotalUnits  int      `json:"total_units"`
	PriceCents  int64    `json:"price_cents"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
	MaxGuests   int      `json:"max_guests"`
}

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	RoomTypeID      string     `json:"room_type_id"`
	RoomName        string     `json:"room_name"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	Guests          int        `json:"guests"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Nights          int        `json:"nights"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}

type BlockView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     string    `json:"room_id"`
	RoomTypeID string    `json:"room_type_id"`
	RoomName   string    `json:"room_name"`
	RoomUnit   string    `json:"room_unit"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

type AvailabilityView struct {
	RoomType       string `json:"room_type"`
	TotalUnits     int    `json:"total_units"`
	BlockedUnits   int    `json:"blocked_units"`
	BookedUnits    int    `json:"booked_units"`
	AvailableUnits int    `json:"available_units"`
}
