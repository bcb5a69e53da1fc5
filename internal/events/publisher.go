package events

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/kafka"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

// Publisher announces booking changes.
type Publisher interface {
	Publish(ctx context.Context, eventType string, evt BookingEvent)
}

// KafkaPublisher publishes booking events as CloudEvents. Failures are
// logged and never reported to the caller.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *zap.Logger
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(producer *kafka.Producer, topic string, logger *zap.Logger) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish sends one event keyed by the booking id.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, evt BookingEvent) {
	bookingID := strconv.FormatInt(evt.Booking.ID, 10)

	cloudEvent, err := kafka.NewCloudEvent(Source, eventType, evt)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("type", eventType),
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		return
	}
	cloudEvent.Subject = bookingID

	if err := p.producer.PublishEvent(ctx, p.topic, cloudEvent); err != nil {
		p.logger.Error("failed to publish booking event",
			zap.String("type", eventType),
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
	}
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, string, BookingEvent) {}

// Created builds the event for a new booking.
func Created(b booking.Booking) BookingEvent {
	return BookingEvent{Booking: b}
}

// Updated builds the event for a changed booking.
func Updated(b booking.Booking, previous booking.BookingStatus) BookingEvent {
	return BookingEvent{Booking: b, PreviousStatus: previous}
}
