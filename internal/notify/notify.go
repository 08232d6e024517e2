package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/shareit/internal/kafka"
)

// Sender delivers booking notifications to owners and bookers. Delivery is
// a line written to out.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "notify user %d: %s\n", recipient(event), message(event))
	return err
}

// recipient is the owner for a new booking and the booker for a decision.
func recipient(event kafka.BookingEvent) int64 {
	switch event.Type {
	case kafka.EventBookingCreated, kafka.EventBookingCanceled:
		return event.OwnerID
	default:
		return event.BookerID
	}
}

func message(event kafka.BookingEvent) string {
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("new booking request #%d for %q from %s to %s", event.BookingID, event.ItemName, event.Start.Format("2006-01-02 15:04"), event.End.Format("2006-01-02 15:04"))
	case kafka.EventBookingApproved:
		return fmt.Sprintf("booking #%d for %q was approved", event.BookingID, event.ItemName)
	case kafka.EventBookingRejected:
		return fmt.Sprintf("booking #%d for %q was rejected", event.BookingID, event.ItemName)
	case kafka.EventBookingCanceled:
		return fmt.Sprintf("booking #%d for %q was canceled by the booker", event.BookingID, event.ItemName)
	default:
		return fmt.Sprintf("booking #%d is now %s", event.BookingID, event.Status)
	}
}
