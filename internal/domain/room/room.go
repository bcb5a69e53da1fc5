package room

import (
	"strings"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/field"
)

// Capacity bounds for a room.
const (
	MinCapacity = 1
	MaxCapacity = 10
)

// Categories is the fixed set of room categories offered at the property.
var Categories = []string{
	"Стандарт",
	"Стандарт Улучшенный",
	"Полулюкс",
	"Люкс",
	"Делюкс",
	"Семейный",
	"Бизнес",
	"Президентский",
}

// Room is a bookable unit of the property.
type Room struct {
	ID          int64  `json:"id"`
	RoomNumber  string `json:"room_number"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity"`
	HasChildBed bool   `json:"has_child_bed"`
}

// Input is the editable part of a room, used for create and update.
type Input struct {
	RoomNumber  string `json:"room_number" binding:"max=10"`
	Category    string `json:"category" binding:"required,max=50"`
	Capacity    int    `json:"capacity"`
	HasChildBed bool   `json:"has_child_bed"`
}

// Apply copies in onto the room, keeping its identity.
func (r Room) Apply(in Input) Room {
	r.RoomNumber = strings.TrimSpace(in.RoomNumber)
	r.Category = in.Category
	r.Capacity = in.Capacity
	r.HasChildBed = in.HasChildBed
	return r
}

// IsValidCategory reports whether category is one of Categories, ignoring case.
func IsValidCategory(category string) bool {
	c := strings.TrimSpace(category)
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			return true
		}
	}
	return false
}

// FindByID returns the room with the given id.
func FindByID(rooms []Room, id int64) (Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// ValidateRoomNumber checks that number is not blank and that no other room
// already uses it, ignoring case. editingID names the room being edited and is
// nil when a new room is being created.
func ValidateRoomNumber(number string, rooms []Room, editingID *int64) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return "room number is required"
	}
	for _, r := range rooms {
		if editingID != nil && r.ID == *editingID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(r.RoomNumber), trimmed) {
			return "room number already exists"
		}
	}
	return ""
}

// Validate checks every editable room field against the current room list.
func Validate(in Input, rooms []Room, editingID *int64) field.Errors {
	errs := field.Errors{}
	if msg := ValidateRoomNumber(in.RoomNumber, rooms, editingID); msg != "" {
		errs.Add(field.RoomNumber, msg)
	}
	if !IsValidCategory(in.Category) {
		errs.Add(field.Category, "unknown room category")
	}
	if in.Capacity < MinCapacity || in.Capacity > MaxCapacity {
		errs.Add(field.Capacity, "capacity must be between 1 and 10")
	}
	return errs
}

// Input returns the editable part of the room.
func (r Room) Input() Input {
	return Input{
		RoomNumber:  r.RoomNumber,
		Category:    r.Category,
		Capacity:    r.Capacity,
		HasChildBed: r.HasChildBed,
	}
}
