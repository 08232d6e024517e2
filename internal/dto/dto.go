// Package dto holds the JSON shapes of the HTTP API and the mappers from
// domain entities.
package dto

import (
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
)

type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserPatchDto struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type ItemDto struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	RequestID   *int64           `json:"requestId"`
	LastBooking *ShortBookingDto `json:"lastBooking"`
	NextBooking *ShortBookingDto `json:"nextBooking"`
	Comments    []CommentDto     `json:"comments"`
}

type ItemPatchDto struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type ShortBookingDto struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type BookingItemDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingDto struct {
	ID     int64          `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Item   BookingItemDto `json:"item"`
	Booker BookerDto      `json:"booker"`
}

type CommentDto struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type NewCommentDto struct {
	Text string `json:"text"`
}

type NewRequestDto struct {
	Description string `json:"description"`
}

// RequestItemDto is an item listed in answer to a request.
type RequestItemDto struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

type RequestDto struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Created     time.Time        `json:"created"`
	Items       []RequestItemDto `json:"items"`
}

func ToUserDto(u *domain.User) UserDto {
	return UserDto{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToUserDtos(users []domain.User) []UserDto {
	out := make([]UserDto, 0, len(users))
	for i := range users {
		out = append(out, ToUserDto(&users[i]))
	}
	return out
}

func (p UserPatchDto) ToDomain() domain.UserPatch {
	return domain.UserPatch{Name: p.Name, Email: p.Email}
}

func (p ItemPatchDto) ToDomain() domain.ItemPatch {
	return domain.ItemPatch{Name: p.Name, Description: p.Description, Available: p.Available}
}

// ToItemDto maps a bare item. Bookings stay null and comments empty.
func ToItemDto(it *domain.Item) ItemDto {
	return ItemDto{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Comments:    []CommentDto{},
	}
}

func ToItemDtos(items []domain.Item) []ItemDto {
	out := make([]ItemDto, 0, len(items))
	for i := range items {
		out = append(out, ToItemDto(&items[i]))
	}
	return out
}

func ToItemDetailsDto(d *domain.ItemDetails) ItemDto {
	out := ToItemDto(&d.Item)
	out.LastBooking = toShortBooking(d.LastBooking)
	out.NextBooking = toShortBooking(d.NextBooking)
	out.Comments = ToCommentDtos(d.Comments)
	return out
}

func ToItemDetailsDtos(details []domain.ItemDetails) []ItemDto {
	out := make([]ItemDto, 0, len(details))
	for i := range details {
		out = append(out, ToItemDetailsDto(&details[i]))
	}
	return out
}

func toShortBooking(b *domain.Booking) *ShortBookingDto {
	if b == nil {
		return nil
	}
	return &ShortBookingDto{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

func ToBookingDto(b *domain.Booking) BookingDto {
	out := BookingDto{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item:   BookingItemDto{ID: b.ItemID},
		Booker: BookerDto{ID: b.BookerID},
	}
	if b.Item != nil {
		out.Item.Name = b.Item.Name
	}
	if b.Booker != nil {
		out.Booker.Name = b.Booker.Name
	}
	return out
}

func ToBookingDtos(bookings []domain.Booking) []BookingDto {
	out := make([]BookingDto, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingDto(&bookings[i]))
	}
	return out
}

func ToCommentDto(c *domain.Comment) CommentDto {
	return CommentDto{ID: c.ID, Text: c.Text, AuthorName: c.AuthorName, Created: c.Created}
}

func ToCommentDtos(comments []domain.Comment) []CommentDto {
	out := make([]CommentDto, 0, len(comments))
	for i := range comments {
		out = append(out, ToCommentDto(&comments[i]))
	}
	return out
}

func ToRequestDto(r *domain.ItemRequest) RequestDto {
	items := make([]RequestItemDto, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, RequestItemDto{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   it.RequestID,
		})
	}
	return RequestDto{ID: r.ID, Description: r.Description, Created: r.Created, Items: items}
}

func ToRequestDtos(requests []domain.ItemRequest) []RequestDto {
	out := make([]RequestDto, 0, len(requests))
	for i := range requests {
		out = append(out, ToRequestDto(&requests[i]))
	}
	return out
}
