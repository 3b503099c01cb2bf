//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/roomtype"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomTypeBuilder struct {
	Params roomtype.Params
}

// defaults to the seeded double room
func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{Params: roomtype.InitialCatalog()[0]}
}

func (r *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(r)
	return r
}

func (r *RoomTypeBuilder) BuildDomain() (*roomtype.RoomType, error) {
	return roomtype.New(r.Params)
}

func (r *RoomTypeBuilder) MustBuildDomain() *roomtype.RoomType {
	return roomtype.Reconstruct(r.Params)
}

func (r *RoomTypeBuilder) BuildInfra() sqlc.RoomTypes {
	return sqlc.RoomTypes{
		ID:          r.Params.ID,
		Type:        r.Params.Name,
		Available:   int32(r.Params.TotalUnits),
		PriceCents:  r.Params.PriceCents,
		Description: r.Params.Description,
		Amenities:   r.Params.Amenities,
		Image:       r.Params.Image,
		MaxGuests:   int32(r.Params.MaxGuests),
		CreatedAt:   pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

func (r *RoomTypeBuilder) BuildView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:          r.Params.ID,
		Name:        r.Params.Name,
		TotalUnits:  r.Params.TotalUnits,
		PriceCents:  r.Params.PriceCents,
		Description: r.Params.Description,
		Amenities:   r.Params.Amenities,
		Image:       r.Params.Image,
		MaxGuests:   r.Params.MaxGuests,
	}
}
