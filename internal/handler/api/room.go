package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(rooms queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms, availability: availability}
}

// @Summary List room types
// @Description List the room catalog
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	items, err := h.rooms.ListRoomTypes(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeList(items))
}

// @Summary Check availability
// @Description Count free units of a room type for [checkIn, checkOut)
// @Tags rooms
// @Produce json
// @Param roomType query string true "Room type id"
// @Param checkIn query string true "Check-in (RFC3339 or YYYY-MM-DD, UTC when no zone)"
// @Param checkOut query string true "Check-out (exclusive)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	stay, err := q.Period()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.availability.Check(c.Request.Context(), q.RoomType, stay)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
