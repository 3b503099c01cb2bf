package period

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInterval = errors.New("check-out must be after check-in")
	ErrInvalidInstant  = errors.New("invalid date or date-time")
)

const day = 24 * time.Hour

// Period is the half-open interval [start, end), always held in UTC.
type Period struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Period, error) {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return Period{}, ErrInvalidInterval
	}
	return Period{start: start, end: end}, nil
}

// Reconstruct skips validation; used for rows already persisted.
func Reconstruct(start, end time.Time) Period {
	return Period{start: start.UTC(), end: end.UTC()}
}

func (p Period) Start() time.Time        { return p.start }
func (p Period) End() time.Time          { return p.end }
func (p Period) Duration() time.Duration { return p.end.Sub(p.start) }

// Overlaps reports whether two periods share any instant. Touching
// periods (one ends where the other starts) do not overlap.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

// Nights counts whole 24h days, truncating any remainder.
func (p Period) Nights() int {
	return int(p.Duration() / day)
}

var zoneNaiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse accepts RFC 3339 instants and zone-naive dates or date-times.
// Zone-naive values are read as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidInstant
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range zoneNaiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidInstant
}

func ParseRange(checkIn, checkOut string) (Period, error) {
	start, err := Parse(checkIn)
	if err != nil {
		return Period{}, err
	}
	end, err := Parse(checkOut)
	if err != nil {
		return Period{}, err
	}
	return New(start, end)
}
