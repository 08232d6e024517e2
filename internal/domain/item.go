package domain

import "time"

type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemDetails is an item together with its comments and, for the owner,
// the nearest approved bookings around now.
type ItemDetails struct {
	Item
	LastBooking *Booking
	NextBooking *Booking
	Comments    []Comment
}

type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}
