package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/response"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/field"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
)

// GuestHandler handles HTTP requests for guest records.
type GuestHandler struct {
	desk Desk
}

// NewGuestHandler creates a new GuestHandler.
func NewGuestHandler(desk Desk) *GuestHandler {
	return &GuestHandler{desk: desk}
}

// RegisterRoutes registers all guest routes on the given router group.
func (h *GuestHandler) RegisterRoutes(r *gin.RouterGroup) {
	guests := r.Group("/api/v1/guests")
	{
		guests.GET("", h.ListGuests)
		guests.POST("", h.CreateGuest)
		guests.POST("/validate", h.ValidateField)
		guests.PUT("/:id", h.UpdateGuest)
		guests.DELETE("/:id", h.DeleteGuest)
	}
}

// ListGuests handles GET /api/v1/guests.
func (h *GuestHandler) ListGuests(c *gin.Context) {
	guests, err := h.desk.ListGuests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, guests)
}

// CreateGuest handles POST /api/v1/guests.
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req guest.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.desk.CreateGuest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateGuest handles PUT /api/v1/guests/:id.
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, ok := parseID(c, "guest")
	if !ok {
		return
	}

	var req guest.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.desk.UpdateGuest(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteGuest handles DELETE /api/v1/guests/:id.
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c, "guest")
	if !ok {
		return
	}

	if err := h.desk.DeleteGuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "guest deleted"})
}

type validateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ValidateField handles POST /api/v1/guests/validate. It checks one field as
// the operator types, leaving the other fields alone.
func (h *GuestHandler) ValidateField(c *gin.Context) {
	var req validateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg := guest.ValidateField(field.Name(req.Field), req.Value)
	response.Success(c, gin.H{
		"field": req.Field,
		"valid": msg == "",
		"error": msg,
	})
}
