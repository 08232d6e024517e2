package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/shareit/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		event kafka.BookingEvent
		want  string
	}{
		{
			name:  "created goes to owner",
			event: kafka.BookingEvent{Type: kafka.EventBookingCreated, BookingID: 1, ItemName: "Drill", OwnerID: 10, BookerID: 20, Start: start, End: start.Add(24 * time.Hour)},
			want:  "notify user 10: new booking request #1 for \"Drill\" from 2030-05-01 09:00 to 2030-05-02 09:00\n",
		},
		{
			name:  "approved goes to booker",
			event: kafka.BookingEvent{Type: kafka.EventBookingApproved, BookingID: 2, ItemName: "Saw", OwnerID: 10, BookerID: 20},
			want:  "notify user 20: booking #2 for \"Saw\" was approved\n",
		},
		{
			name:  "rejected goes to booker",
			event: kafka.BookingEvent{Type: kafka.EventBookingRejected, BookingID: 3, ItemName: "Saw", OwnerID: 10, BookerID: 20},
			want:  "notify user 20: booking #3 for \"Saw\" was rejected\n",
		},
		{
			name:  "canceled goes to owner",
			event: kafka.BookingEvent{Type: kafka.EventBookingCanceled, BookingID: 4, ItemName: "Tent", OwnerID: 10, BookerID: 20},
			want:  "notify user 10: booking #4 for \"Tent\" was canceled by the booker\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewSenderTo(&buf).Send(context.Background(), tc.event))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestSender_SendCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	assert.ErrorIs(t, NewSenderTo(&buf).Send(ctx, kafka.BookingEvent{}), context.Canceled)
	assert.Empty(t, buf.String())
}
