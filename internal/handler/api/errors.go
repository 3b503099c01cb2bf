package api

import (
	"net/http"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	targets []error
	status  int
	message string
}

// first match wins; order specific before general
var errorMappings = []errorMapping{
	{[]error{commands.ErrRoomTypeNotFound, queries.ErrRoomTypeNotFound}, http.StatusNotFound, "Room type not found"},
	{[]error{commands.ErrBookingNotFound, queries.ErrBookingNotFound}, http.StatusNotFound, "Booking not found"},
	{[]error{commands.ErrBlockNotFound, queries.ErrBlockNotFound}, http.StatusNotFound, "Blocked booking not found"},
	{[]error{commands.ErrNoAvailability}, http.StatusConflict, "No rooms available for selected dates"},
	{[]error{commands.ErrBookingAlreadyCancelled}, http.StatusConflict, "Booking is already cancelled"},
	{[]error{roomtype.ErrGuestLimit}, http.StatusBadRequest, "Guest count exceeds what this room allows"},
	{[]error{booking.ErrStayTooShort}, http.StatusBadRequest, "Stay must cover at least one night"},
	{[]error{period.ErrInvalidInstant}, http.StatusBadRequest, "Invalid date format"},
	{[]error{commands.ErrInvalidInterval, period.ErrInvalidInterval}, http.StatusBadRequest, "Check-out must be after check-in"},
	{[]error{booking.ErrInvalidContact}, http.StatusBadRequest, "Full name and email are required"},
	{[]error{commands.ErrInvalidBooking, commands.ErrInvalidBlock}, http.StatusBadRequest, "Invalid request"},
	{[]error{queries.ErrInvalidCursor}, http.StatusBadRequest, "Invalid cursor"},
	{[]error{commands.ErrInvalidCredentials}, http.StatusUnauthorized, "Invalid credentials"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errs.Is(err, target) {
				httperr.AbortWithError(c, m.status, err, m.message)
				return
			}
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
}
