package events

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/kafka"
)

// Refresher reloads front-desk state.
type Refresher interface {
	Load(ctx context.Context) error
}

// BookingEventConsumer listens to booking events and refreshes the front
// desk snapshot, so changes made by another desk show up without a request.
type BookingEventConsumer struct {
	consumer  *kafka.Consumer
	refresher Refresher
	logger    *zap.Logger
}

// NewBookingEventConsumer creates a new BookingEventConsumer.
func NewBookingEventConsumer(
	brokers []string,
	groupID string,
	topic string,
	refresher Refresher,
	logger *zap.Logger,
) *BookingEventConsumer {
	if topic == "" {
		topic = DefaultTopic
	}
	return &BookingEventConsumer{
		consumer:  kafka.NewConsumer(brokers, groupID, topic, logger),
		refresher: refresher,
		logger:    logger,
	}
}

// Start begins consuming booking events. This blocks until the context is cancelled.
func (c *BookingEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *BookingEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *BookingEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	return c.handle(ctx, msg.Value)
}

func (c *BookingEventConsumer) handle(ctx context.Context, raw []byte) error {
	cloudEvent, err := kafka.ParseCloudEvent(raw)
	if err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(raw)),
		)
		return nil
	}

	switch cloudEvent.Type {
	case BookingCreated, BookingUpdated, BookingDeleted:
	default:
		c.logger.Debug("ignoring unhandled booking event type", zap.String("type", cloudEvent.Type))
		return nil
	}

	var evt BookingEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse booking event data", zap.Error(err))
		return nil
	}

	c.logger.Info("booking changed elsewhere, refreshing snapshot",
		zap.String("type", cloudEvent.Type),
		zap.Int64("booking_id", evt.Booking.ID),
	)
	if err := c.refresher.Load(ctx); err != nil {
		c.logger.Error("failed to refresh snapshot after booking event",
			zap.Int64("booking_id", evt.Booking.ID),
			zap.Error(err),
		)
	}
	return nil
}
