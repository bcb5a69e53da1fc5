package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/kafka"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
)

type countingRefresher struct {
	loads int
	err   error
}

func (r *countingRefresher) Load(ctx context.Context) error {
	r.loads++
	return r.err
}

func rawEvent(t *testing.T, eventType string, evt BookingEvent) []byte {
	t.Helper()
	ce, err := kafka.NewCloudEvent(Source, eventType, evt)
	require.NoError(t, err)
	raw, err := json.Marshal(ce)
	require.NoError(t, err)
	return raw
}

func TestBookingEventConsumer_RefreshesOnBookingEvents(t *testing.T) {
	ref := &countingRefresher{}
	c := &BookingEventConsumer{refresher: ref, logger: zap.NewNop()}

	for _, typ := range []string{BookingCreated, BookingUpdated, BookingDeleted} {
		require.NoError(t, c.handle(context.Background(), rawEvent(t, typ, Created(booking.Booking{ID: 1}))))
	}
	assert.Equal(t, 3, ref.loads)
}

func TestBookingEventConsumer_SkipsOtherMessages(t *testing.T) {
	ref := &countingRefresher{}
	c := &BookingEventConsumer{refresher: ref, logger: zap.NewNop()}

	assert.NoError(t, c.handle(context.Background(), []byte("not json")))
	assert.NoError(t, c.handle(context.Background(), rawEvent(t, "payment.released", BookingEvent{})))
	assert.Equal(t, 0, ref.loads)
}

func TestBookingEventConsumer_FailedRefreshIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	ref := &countingRefresher{err: errors.New("store down")}
	c := &BookingEventConsumer{refresher: ref, logger: zap.New(core)}

	err := c.handle(context.Background(), rawEvent(t, BookingUpdated, Updated(booking.Booking{ID: 2}, booking.StatusConfirmed)))
	assert.NoError(t, err)
	assert.Equal(t, 1, ref.loads)
	require.Equal(t, 1, logs.FilterMessage("failed to refresh snapshot after booking event").Len())
}
