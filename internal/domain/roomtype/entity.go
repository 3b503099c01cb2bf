package roomtype

import (
	"errors"
	"regexp"
	"slices"
)

var (
	ErrInvalidID         = errors.New("room type id must be a lowercase slug")
	ErrInvalidName       = errors.New("room type name is required")
	ErrInvalidTotalUnits = errors.New("total units must be positive")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidMaxGuests  = errors.New("max guests must be positive")
	ErrGuestLimit        = errors.New("guest count outside the allowed range")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func IsSlug(s string) bool {
	return len(s) <= 64 && slugPattern.MatchString(s)
}

type RoomType struct {
	id          string
	name        string
	totalUnits  int
	priceCents  int64
	description string
	amenities   []string
	image       string
	maxGuests   int
}

type Params struct {
	ID          string
	Name        string
	TotalUnits  int
	PriceCents  int64
	Description string
	Amenities   []string
	Image       string
	MaxGuests   int
}

func New(p Params) (*RoomType, error) {
	if !IsSlug(p.ID) {
		return nil, ErrInvalidID
	}
	if p.Name == "" {
		return nil, ErrInvalidName
	}
	if p.TotalUnits <= 0 {
		return nil, ErrInvalidTotalUnits
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if p.MaxGuests <= 0 {
		return nil, ErrInvalidMaxGuests
	}
	return Reconstruct(p), nil
}

func Reconstruct(p Params) *RoomType {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &RoomType{
		id:          p.ID,
		name:        p.Name,
		totalUnits:  p.TotalUnits,
		priceCents:  p.PriceCents,
		description: p.Description,
		amenities:   slices.Clone(amenities),
		image:       p.Image,
		maxGuests:   p.MaxGuests,
	}
}

func (r *RoomType) ID() string          { return r.id }
func (r *RoomType) Name() string        { return r.name }
func (r *RoomType) TotalUnits() int     { return r.totalUnits }
func (r *RoomType) PriceCents() int64   { return r.priceCents }
func (r *RoomType) Description() string { return r.description }
func (r *RoomType) Amenities() []string { return slices.Clone(r.amenities) }
func (r *RoomType) Image() string       { return r.image }
func (r *RoomType) MaxGuests() int      { return r.maxGuests }

func (r *RoomType) ValidateGuests(guests int) error {
	if guests < 1 || guests > r.maxGuests {
		return ErrGuestLimit
	}
	return nil
}

func (r *RoomType) Params() Params {
	return Params{
		ID:          r.id,
		Name:        r.name,
		TotalUnits:  r.totalUnits,
		PriceCents:  r.priceCents,
		Description: r.description,
		Amenities:   r.Amenities(),
		Image:       r.image,
		MaxGuests:   r.maxGuests,
	}
}
