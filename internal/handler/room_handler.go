package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/response"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// RoomHandler handles HTTP requests for rooms.
type RoomHandler struct {
	desk Desk
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(desk Desk) *RoomHandler {
	return &RoomHandler{desk: desk}
}

// RegisterRoutes registers all room routes on the given router group.
func (h *RoomHandler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/api/v1/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/categories", h.ListCategories)
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}

// ListRooms handles GET /api/v1/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.desk.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rooms)
}

// ListCategories handles GET /api/v1/rooms/categories.
func (h *RoomHandler) ListCategories(c *gin.Context) {
	response.Success(c, room.Categories)
}

// CreateRoom handles POST /api/v1/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req room.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.desk.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateRoom handles PUT /api/v1/rooms/:id.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "room")
	if !ok {
		return
	}

	var req room.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.desk.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id. The room's bookings go with it.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "room")
	if !ok {
		return
	}

	if err := h.desk.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "room and its bookings deleted"})
}
