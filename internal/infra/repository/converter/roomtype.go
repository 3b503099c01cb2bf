package converter

import (
	"hotel-booking/internal/domain/roomtype"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
)

func RoomTypeToCreateParams(rt *roomtype.RoomType) sqlc.CreateRoomTypeParams {
	return sqlc.CreateRoomTypeParams{
		ID:          rt.ID(),
		Type:        rt.Name(),
		Available:   int32(rt.TotalUnits()), // #nosec G115 -- bounded by seed data
		PriceCents:  rt.PriceCents(),
		Description: rt.Description(),
		Amenities:   rt.Amenities(),
		Image:       rt.Image(),
		MaxGuests:   int32(rt.MaxGuests()), // #nosec G115
	}
}

func RoomTypeFromRow(row sqlc.RoomTypes) *roomtype.RoomType {
	return roomtype.Reconstruct(roomtype.Params{
		ID:          row.ID,
		Name:        row.Type,
		TotalUnits:  int(row.Available),
		PriceCents:  row.PriceCents,
		Description: row.Description,
		Amenities:   row.Amenities,
		Image:       row.Image,
		MaxGuests:   int(row.MaxGuests),
	})
}
