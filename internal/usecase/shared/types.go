package shared

import (
	"hotel-booking/internal/domain/availability"
)

// OccupancySnapshot is everything overlapping one query period for one room type.
type OccupancySnapshot struct {
	Holds []availability.Hold
	Stays []availability.Stay
}
