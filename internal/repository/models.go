package repository

import (
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
)

type userModel struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:512;not null;uniqueIndex"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toDomain() domain.User {
	return domain.User{ID: m.ID, Name: m.Name, Email: m.Email}
}

func newUserModel(u *domain.User) userModel {
	return userModel{ID: u.ID, Name: u.Name, Email: u.Email}
}

type requestModel struct {
	ID          int64     `gorm:"primaryKey"`
	Description string    `gorm:"size:2000;not null"`
	RequestorID int64     `gorm:"not null;index"`
	Requestor   userModel `gorm:"foreignKey:RequestorID;constraint:OnDelete:CASCADE"`
	Created     time.Time `gorm:"not null;index"`
}

func (requestModel) TableName() string { return "requests" }

func (m requestModel) toDomain() domain.ItemRequest {
	return domain.ItemRequest{
		ID:          m.ID,
		Description: m.Description,
		RequestorID: m.RequestorID,
		Created:     m.Created,
	}
}

type itemModel struct {
	ID          int64         `gorm:"primaryKey"`
	Name        string        `gorm:"size:255;not null"`
	Description string        `gorm:"size:2000;not null"`
	Available   bool          `gorm:"not null"`
	OwnerID     int64         `gorm:"not null;index"`
	Owner       userModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	RequestID   *int64        `gorm:"index"`
	Request     *requestModel `gorm:"foreignKey:RequestID;constraint:OnDelete:SET NULL"`
}

func (itemModel) TableName() string { return "items" }

func (m itemModel) toDomain() domain.Item {
	return domain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		OwnerID:     m.OwnerID,
		RequestID:   m.RequestID,
	}
}

func newItemModel(i *domain.Item) itemModel {
	return itemModel{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

type bookingModel struct {
	ID       int64     `gorm:"primaryKey"`
	Start    time.Time `gorm:"column:start_date;not null;index"`
	End      time.Time `gorm:"column:end_date;not null"`
	Status   string    `gorm:"size:16;not null;index"`
	ItemID   int64     `gorm:"not null;index"`
	Item     itemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	BookerID int64     `gorm:"not null;index"`
	Booker   userModel `gorm:"foreignKey:BookerID;constraint:OnDelete:CASCADE"`
}

func (bookingModel) TableName() string { return "bookings" }

// toDomain fills Item and Booker only when they were preloaded.
func (m bookingModel) toDomain() domain.Booking {
	b := domain.Booking{
		ID:       m.ID,
		Start:    m.Start,
		End:      m.End,
		Status:   domain.BookingStatus(m.Status),
		ItemID:   m.ItemID,
		BookerID: m.BookerID,
	}
	if m.Item.ID != 0 {
		item := m.Item.toDomain()
		b.Item = &item
	}
	if m.Booker.ID != 0 {
		booker := m.Booker.toDomain()
		b.Booker = &booker
	}
	return b
}

type commentModel struct {
	ID       int64     `gorm:"primaryKey"`
	Text     string    `gorm:"size:2000;not null"`
	ItemID   int64     `gorm:"not null;index"`
	Item     itemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	AuthorID int64     `gorm:"not null"`
	Author   userModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Created  time.Time `gorm:"not null"`
}

func (commentModel) TableName() string { return "comments" }

func (m commentModel) toDomain() domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		Text:       m.Text,
		ItemID:     m.ItemID,
		AuthorID:   m.AuthorID,
		AuthorName: m.Author.Name,
		Created:    m.Created,
	}
}
