package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlockHandler struct {
	cmds commands.BlockCommands
	q    queries.BlockQueries
}

func NewBlockHandler(cmds commands.BlockCommands, q queries.BlockQueries) *BlockHandler {
	return &BlockHandler{cmds: cmds, q: q}
}

// @Summary Block a room unit
// @Description Take one physical unit offline for a period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlockRequest true "Create block request"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/blocked-bookings [post]
func (h *BlockHandler) Create(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrMissingToken, "Unauthorized")
		return
	}
	var req reqdto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	created, err := h.cmds.CreateBlock(c.Request.Context(), cmd, admin)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlock(created))
}

// @Summary List blocked units
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BlockResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/blocked-bookings [get]
func (h *BlockHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockList(items))
}

// @Summary Unblock a room unit
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Blocked booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/blocked-bookings/{id} [delete]
func (h *BlockHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrMissingToken, "Unauthorized")
		return
	}
	if err := h.cmds.DeleteBlock(c.Request.Context(), id, admin); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
