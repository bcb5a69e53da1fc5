// Package events carries booking lifecycle events between the data store
// and the front desk over Kafka.
package events

import (
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

// DefaultTopic is the topic booking events are published to unless configured otherwise.
const DefaultTopic = "hotel.booking.events"

// Event types.
const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

// Source identifies the publisher in the CloudEvent envelope.
const Source = "hotel-store"

// BookingEvent is the data of every booking event.
type BookingEvent struct {
	Booking        booking.Booking       `json:"booking"`
	PreviousStatus booking.BookingStatus `json:"previous_status,omitempty"`
}
