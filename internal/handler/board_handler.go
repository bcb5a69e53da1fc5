package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/response"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

// BoardHandler serves the room board and pricing views.
type BoardHandler struct {
	desk Desk
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(desk Desk) *BoardHandler {
	return &BoardHandler{desk: desk}
}

// RegisterRoutes registers the board routes on the given router group.
func (h *BoardHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/board", h.Board)
		api.GET("/prices", h.Prices)
		api.GET("/quote", h.Quote)
	}
}

// Board handles GET /api/v1/board.
func (h *BoardHandler) Board(c *gin.Context) {
	board, err := h.desk.Board(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}

// Prices handles GET /api/v1/prices.
func (h *BoardHandler) Prices(c *gin.Context) {
	rows, err := h.desk.Prices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"rate_card":   h.desk.RateCard(),
		"room_prices": rows,
	})
}

// Quote handles GET /api/v1/quote.
func (h *BoardHandler) Quote(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		response.BadRequest(c, "invalid room ID")
		return
	}

	q, err := h.desk.Quote(c.Request.Context(), roomID, bookingDomain.StayDates{
		CheckIn:  c.Query("check_in_date"),
		CheckOut: c.Query("check_out_date"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, q)
}
