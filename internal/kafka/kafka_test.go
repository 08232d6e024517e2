package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingEventHandler(t *testing.T) {
	event := BookingEvent{
		Type:      "booking_created",
		BookingID: 1,
		ItemID:    2,
		OwnerID:   3,
		BookerID:  4,
		Status:    "WAITING",
		Start:     time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		End:       time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var got BookingEvent
	handler := BookingEventHandler(func(ctx context.Context, e BookingEvent) error {
		got = e
		return nil
	})

	require.NoError(t, handler(context.Background(), kafka.Message{Value: data}))
	assert.Equal(t, event, got)
}

func TestBookingEventHandler_SkipsGarbage(t *testing.T) {
	called := false
	handler := BookingEventHandler(func(ctx context.Context, e BookingEvent) error {
		called = true
		return nil
	})

	assert.NoError(t, handler(context.Background(), kafka.Message{Value: []byte("{not json")}))
	assert.False(t, called)
}

func TestBookingEventHandler_PropagatesErrors(t *testing.T) {
	boom := errors.New("smtp down")
	handler := BookingEventHandler(func(ctx context.Context, e BookingEvent) error {
		return boom
	})

	err := handler(context.Background(), kafka.Message{Value: []byte(`{"type":"booking_approved"}`)})
	assert.ErrorIs(t, err, boom)
}

func TestNewProducer(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	assert.NotNil(t, p)
	assert.NoError(t, p.Close())
}
