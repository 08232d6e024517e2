package domain

import "time"

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
	BookingStatusCanceled BookingStatus = "CANCELED"
)

// BookingState selects a slice of a user's bookings relative to the current time.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

var bookingStates = []BookingState{
	BookingStateAll,
	BookingStateCurrent,
	BookingStatePast,
	BookingStateFuture,
	BookingStateWaiting,
	BookingStateRejected,
}

// ParseBookingState matches s case-sensitively. An empty string means ALL.
func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return BookingStateAll, nil
	}
	for _, st := range bookingStates {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrUnknownState
}

type Booking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	Status   BookingStatus
	ItemID   int64
	BookerID int64

	Item   *Item
	Booker *User
}
