package datastore

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Handler exposes the store resources. Successful responses carry the bare
// resource; failures carry {"error": "..."}.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers every store resource on the given router group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	guests := r.Group("/guests")
	{
		guests.GET("", h.ListGuests)
		guests.POST("", h.CreateGuest)
		guests.GET("/:id", h.GetGuest)
		guests.PUT("/:id", h.UpdateGuest)
		guests.DELETE("/:id", h.DeleteGuest)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.POST("", h.CreateRoom)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}

	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
	}

	prices := r.Group("/prices")
	{
		prices.GET("", h.ListPrices)
		prices.POST("", h.CreatePrice)
		prices.GET("/:id", h.GetPrice)
		prices.PUT("/:id", h.UpdatePrice)
		prices.DELETE("/:id", h.DeletePrice)
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	var (
		vErr  *domain.ValidationError
		nfErr *domain.NotFoundError
		cErr  *domain.ConflictError
	)
	status := http.StatusInternalServerError
	message := "internal server error"
	switch {
	case errors.As(err, &vErr):
		status, message = http.StatusBadRequest, vErr.Error()
	case errors.As(err, &nfErr):
		status, message = http.StatusNotFound, nfErr.Error()
	case errors.As(err, &cErr):
		status, message = http.StatusConflict, cErr.Error()
	default:
		h.logger.Error("store request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func deleted(c *gin.Context, what string) {
	c.JSON(http.StatusOK, gin.H{"message": what + " deleted"})
}

// --- Guests ---

// ListGuests handles GET /guests.
func (h *Handler) ListGuests(c *gin.Context) {
	out, err := h.service.ListGuests(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetGuest handles GET /guests/:id.
func (h *Handler) GetGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.service.GetGuest(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateGuest handles POST /guests.
func (h *Handler) CreateGuest(c *gin.Context) {
	var req guest.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.CreateGuest(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// UpdateGuest handles PUT /guests/:id.
func (h *Handler) UpdateGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req GuestPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.UpdateGuest(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteGuest handles DELETE /guests/:id.
func (h *Handler) DeleteGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteGuest(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "guest")
}

// --- Rooms ---

// ListRooms handles GET /rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	out, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetRoom handles GET /rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateRoom handles POST /rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req room.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// UpdateRoom handles PUT /rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RoomPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteRoom also removes the room's bookings.
// DeleteRoom handles DELETE /rooms/:id, removing the room's bookings too.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "room and its bookings")
}

// --- Bookings ---

// ListBookings handles GET /bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	out, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetBooking handles GET /bookings/:id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateBooking handles POST /bookings. Status defaults to confirmed and price to 0.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingDomain.NewBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// UpdateBooking handles PUT /bookings/:id.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req bookingDomain.Patch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.UpdateBooking(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "booking")
}

// --- Prices ---

// ListPrices handles GET /prices.
func (h *Handler) ListPrices(c *gin.Context) {
	out, err := h.service.ListPrices(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPrice handles GET /prices/:id.
func (h *Handler) GetPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.service.GetPrice(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreatePrice handles POST /prices.
func (h *Handler) CreatePrice(c *gin.Context) {
	var req room.PriceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.CreatePrice(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// UpdatePrice handles PUT /prices/:id.
func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req room.PriceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	out, err := h.service.UpdatePrice(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeletePrice handles DELETE /prices/:id.
func (h *Handler) DeletePrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePrice(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "price")
}
