package response

import (
	"hotel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Available   int      `json:"available"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
	MaxGuests   int      `json:"maxGuests"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	res := &RoomTypeResponse{}
	_ = copier.Copy(res, v)
	res.Type = v.Name
	res.Available = v.TotalUnits
	res.Price = centsToMajor(v.PriceCents)
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	return res
}

func FromRoomTypeList(items []*queries.RoomTypeView) []*RoomTypeResponse {
	res := make([]*RoomTypeResponse, len(items))
	for i, it := range items {
		res[i] = FromRoomTypeView(it)
	}
	return res
}

type AvailabilityResponse struct {
	RoomType       string `json:"roomType"`
	TotalUnits     int    `json:"totalUnits"`
	BlockedUnits   int    `json:"blockedUnits"`
	BookedUnits    int    `json:"bookedUnits"`
	AvailableUnits int    `json:"availableUnits"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{}
	_ = copier.Copy(res, v)
	return res
}
