package domain

import "time"

// ItemRequest is an open request for an item nobody has listed yet.
// Items is filled by the service and never persisted.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time

	Items []Item
}
