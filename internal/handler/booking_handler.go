package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/response"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	desk Desk
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(desk Desk) *BookingHandler {
	return &BookingHandler{desk: desk}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.EditBooking)
		bookings.PATCH("/:id", h.UpdateBooking)
		bookings.POST("/:id/checkin", h.CheckIn)
		bookings.POST("/:id/checkout", h.CheckOut)
		bookings.POST("/:id/cancel", h.CancelBooking)
	}
}

// ListBookings handles GET /api/v1/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.desk.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bookings)
}

// CreateBooking handles POST /api/v1/bookings. Action "booking" reserves the
// room; action "checkin" settles the guests at once.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.RoomID <= 0 {
		response.BadRequest(c, "invalid room ID")
		return
	}
	if req.Action == "" {
		req.Action = bookingDomain.ActionBooking
	}

	result, err := h.desk.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// EditBooking handles PUT /api/v1/bookings/:id.
func (h *BookingHandler) EditBooking(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	var req application.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.desk.EditBooking(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateBooking handles PATCH /api/v1/bookings/:id, forwarding only the fields present.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	var patch bookingDomain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.desk.UpdateBooking(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CheckIn handles POST /api/v1/bookings/:id/checkin.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	result, err := h.desk.CheckIn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CheckOut handles POST /api/v1/bookings/:id/checkout.
func (h *BookingHandler) CheckOut(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	result, err := h.desk.CheckOut(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	if err := h.desk.CancelBooking(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "booking cancelled"})
}
