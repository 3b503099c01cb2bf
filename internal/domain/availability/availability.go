package availability

import (
	"errors"

	"hotel-booking/internal/domain/period"
)

var ErrNoAvailability = errors.New("no rooms available for selected dates")

type Mode int

const (
	// ModeStrict subtracts distinct blocked units and overlapping
	// confirmed bookings.
	ModeStrict Mode = iota
	// ModeLegacyBlocksOnly ignores bookings entirely. Kept for parity
	// checks against the previous deployment.
	ModeLegacyBlocksOnly
)

func ModeFor(legacyBlocksOnly bool) Mode {
	if legacyBlocksOnly {
		return ModeLegacyBlocksOnly
	}
	return ModeStrict
}

func (m Mode) String() string {
	if m == ModeLegacyBlocksOnly {
		return "legacy-blocks-only"
	}
	return "strict"
}

// Hold is a manual block on one physical unit.
type Hold struct {
	Unit string
	Stay period.Period
}

// Stay is a booking's claim on one pooled unit. Only confirmed stays occupy.
type Stay struct {
	Period    period.Period
	Confirmed bool
}

type Occupancy struct {
	RoomType       string
	TotalUnits     int
	BlockedUnits   int
	BookedUnits    int
	AvailableUnits int
}

func Aggregate(roomType string, totalUnits int, query period.Period, holds []Hold, stays []Stay, mode Mode) Occupancy {
	blocked := make(map[string]struct{}, len(holds))
	for _, h := range holds {
		if h.Stay.Overlaps(query) {
			blocked[h.Unit] = struct{}{}
		}
	}

	booked := 0
	for _, s := range stays {
		if s.Confirmed && s.Period.Overlaps(query) {
			booked++
		}
	}

	taken := len(blocked)
	if mode == ModeStrict {
		taken += booked
	}

	return Occupancy{
		RoomType:       roomType,
		TotalUnits:     totalUnits,
		BlockedUnits:   len(blocked),
		BookedUnits:    booked,
		AvailableUnits: max(0, totalUnits-taken),
	}
}

func (o Occupancy) Admit() error {
	if o.AvailableUnits <= 0 {
		return ErrNoAvailability
	}
	return nil
}
