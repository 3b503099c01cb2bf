package request

import "hotel-booking/internal/domain/period"

type AvailabilityQuery struct {
	RoomType string `form:"roomType" binding:"required,roomslug"`
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}

func (q AvailabilityQuery) Period() (period.Period, error) {
	return period.ParseRange(q.CheckIn, q.CheckOut)
}
