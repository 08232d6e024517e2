package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToItemDto_EmptyCollections(t *testing.T) {
	out := ToItemDto(&domain.Item{ID: 1, Name: "Drill", Available: true})

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Drill","description":"","available":true,"requestId":null,
		"lastBooking":null,"nextBooking":null,"comments":[]}`, string(data))
}

func TestToItemDetailsDto(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	details := &domain.ItemDetails{
		Item:        domain.Item{ID: 1, Name: "Drill"},
		LastBooking: &domain.Booking{ID: 3, BookerID: 2, Start: start, End: start.Add(time.Hour)},
		Comments:    []domain.Comment{{ID: 9, Text: "Great", AuthorName: "Bob", Created: start}},
	}

	out := ToItemDetailsDto(details)

	require.NotNil(t, out.LastBooking)
	assert.Equal(t, int64(2), out.LastBooking.BookerID)
	assert.Nil(t, out.NextBooking)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, "Bob", out.Comments[0].AuthorName)
}

func TestToBookingDto(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:       4,
		Start:    start,
		End:      start.Add(time.Hour),
		Status:   domain.BookingStatusApproved,
		ItemID:   1,
		BookerID: 2,
		Item:     &domain.Item{ID: 1, Name: "Drill"},
		Booker:   &domain.User{ID: 2, Name: "Bob"},
	}

	data, err := json.Marshal(ToBookingDto(b))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"start":"2030-01-01T10:00:00Z","end":"2030-01-01T11:00:00Z","status":"APPROVED",
		"item":{"id":1,"name":"Drill"},"booker":{"id":2,"name":"Bob"}}`, string(data))
}

func TestToBookingDto_WithoutAssociations(t *testing.T) {
	out := ToBookingDto(&domain.Booking{ID: 4, ItemID: 1, BookerID: 2})

	assert.Equal(t, int64(1), out.Item.ID)
	assert.Equal(t, int64(2), out.Booker.ID)
	assert.Empty(t, out.Item.Name)
}

func TestToRequestDto(t *testing.T) {
	reqID := int64(7)
	r := &domain.ItemRequest{
		ID:          7,
		Description: "Need a ladder",
		Items:       []domain.Item{{ID: 1, Name: "Ladder", OwnerID: 3, RequestID: &reqID}},
	}

	out := ToRequestDto(r)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(3), out.Items[0].OwnerID)
	assert.Equal(t, &reqID, out.Items[0].RequestID)
	assert.NotNil(t, ToRequestDto(&domain.ItemRequest{}).Items)
}

func TestListMappers_NeverNil(t *testing.T) {
	assert.NotNil(t, ToUserDtos(nil))
	assert.NotNil(t, ToItemDtos(nil))
	assert.NotNil(t, ToItemDetailsDtos(nil))
	assert.NotNil(t, ToBookingDtos(nil))
	assert.NotNil(t, ToRequestDtos(nil))
}

func TestPatchToDomain(t *testing.T) {
	name := "New"
	assert.Equal(t, &name, UserPatchDto{Name: &name}.ToDomain().Name)

	available := false
	assert.Equal(t, &available, ItemPatchDto{Available: &available}.ToDomain().Available)
}
