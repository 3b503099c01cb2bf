package block

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const DefaultReason = "Offline booking"

var (
	ErrUnitRequired   = errors.New("room unit is required")
	ErrRoomIDRequired = errors.New("room id is required")
)

// BlockedBooking holds one physical unit offline for a period.
type BlockedBooking struct {
	id         uuid.UUID
	roomID     string
	roomTypeID string
	roomName   string
	roomUnit   string
	stay       period.Period
	reason     string
	createdAt  time.Time
}

type Request struct {
	RoomID   string
	RoomName string
	RoomUnit string
	Stay     period.Period
	Reason   *string
}

// New falls back to the catalog name and DefaultReason when the request
// leaves them empty.
func New(clk clock.Clock, rt *roomtype.RoomType, req Request) (*BlockedBooking, error) {
	unit := strings.TrimSpace(req.RoomUnit)
	if unit == "" {
		return nil, ErrUnitRequired
	}
	roomID := strings.TrimSpace(req.RoomID)
	if roomID == "" {
		return nil, ErrRoomIDRequired
	}
	name := strings.TrimSpace(req.RoomName)
	if name == "" {
		name = rt.Name()
	}
	return &BlockedBooking{
		id:         uuid.New(),
		roomID:     roomID,
		roomTypeID: rt.ID(),
		roomName:   name,
		roomUnit:   unit,
		stay:       req.Stay,
		reason:     patch.TrimmedOr(req.Reason, DefaultReason),
		createdAt:  clk.Now(),
	}, nil
}

type Snapshot struct {
	ID         uuid.UUID
	RoomID     string
	RoomTypeID string
	RoomName   string
	RoomUnit   string
	Stay       period.Period
	Reason     string
	CreatedAt  time.Time
}

func (b *BlockedBooking) ID() uuid.UUID        { return b.id }
func (b *BlockedBooking) RoomID() string       { return b.roomID }
func (b *BlockedBooking) RoomTypeID() string   { return b.roomTypeID }
func (b *BlockedBooking) RoomName() string     { return b.roomName }
func (b *BlockedBooking) RoomUnit() string     { return b.roomUnit }
func (b *BlockedBooking) Stay() period.Period  { return b.stay }
func (b *BlockedBooking) Reason() string       { return b.reason }
func (b *BlockedBooking) CreatedAt() time.Time { return b.createdAt }

func (b *BlockedBooking) Snapshot() Snapshot {
	return Snapshot{
		ID:         b.id,
		RoomID:     b.roomID,
		RoomTypeID: b.roomTypeID,
		RoomName:   b.roomName,
		RoomUnit:   b.roomUnit,
		Stay:       b.stay,
		Reason:     b.reason,
		CreatedAt:  b.createdAt,
	}
}
