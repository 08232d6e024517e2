package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingFilter narrows a booking listing. Zero fields are not applied.
type BookingFilter struct {
	Status        domain.BookingStatus
	StartedBefore time.Time
	StartsAfter   time.Time
	EndsAfter     time.Time
	EndedBefore   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListByBooker(ctx context.Context, bookerID int64, filter BookingFilter, page domain.Page) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, filter BookingFilter, page domain.Page) ([]domain.Booking, error)
	LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	m := bookingModel{
		Start:    booking.Start,
		End:      booking.End,
		Status:   string(booking.Status),
		ItemID:   booking.ItemID,
		BookerID: booking.BookerID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, "booking")
	}
	booking.ID = m.ID
	return nil
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).Preload("Item").Preload("Booker").First(&m, id).Error; err != nil {
		return nil, translate(err, "booking")
	}
	b := m.toDomain()
	return &b, nil
}

func (r *GormBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).Model(&bookingModel{ID: id}).Update("status", string(status))
	if res.Error != nil {
		return translate(res.Error, "booking")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("booking %d not found", id)
	}
	return nil
}

func (r *GormBookingRepository) ListByBooker(ctx context.Context, bookerID int64, filter BookingFilter, page domain.Page) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Where("booker_id = ?", bookerID)
	return r.list(q, filter, page)
}

func (r *GormBookingRepository) ListByOwner(ctx context.Context, ownerID int64, filter BookingFilter, page domain.Page) ([]domain.Booking, error) {
	owned := r.db.WithContext(ctx).Model(&itemModel{}).Select("id").Where("owner_id = ?", ownerID)
	q := r.db.WithContext(ctx).Where("item_id IN (?)", owned)
	return r.list(q, filter, page)
}

func (r *GormBookingRepository) list(q *gorm.DB, filter BookingFilter, page domain.Page) ([]domain.Booking, error) {
	var rows []bookingModel
	err := q.Scopes(filter.scope, pageScope(page)).
		Preload("Item").
		Preload("Booker").
		Order("start_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "bookings")
	}
	bookings := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		bookings = append(bookings, m.toDomain())
	}
	return bookings, nil
}

func (r *GormBookingRepository) LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	return r.first(r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date < ?", itemID, domain.BookingStatusApproved, now).
		Order("start_date DESC"))
}

func (r *GormBookingRepository) NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	return r.first(r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date > ?", itemID, domain.BookingStatusApproved, now).
		Order("start_date"))
}

// first returns nil without error when q matches nothing.
func (r *GormBookingRepository) first(q *gorm.DB) (*domain.Booking, error) {
	var m bookingModel
	if err := q.Limit(1).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate(err, "booking")
	}
	b := m.toDomain()
	return &b, nil
}

func (r *GormBookingRepository) HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("item_id = ? AND booker_id = ? AND status = ? AND end_date < ?", itemID, bookerID, domain.BookingStatusApproved, now).
		Count(&n).Error
	if err != nil {
		return false, translate(err, "booking")
	}
	return n > 0, nil
}

func (f BookingFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", string(f.Status))
	}
	if !f.StartedBefore.IsZero() {
		db = db.Where("start_date < ?", f.StartedBefore)
	}
	if !f.StartsAfter.IsZero() {
		db = db.Where("start_date > ?", f.StartsAfter)
	}
	if !f.EndsAfter.IsZero() {
		db = db.Where("end_date > ?", f.EndsAfter)
	}
	if !f.EndedBefore.IsZero() {
		db = db.Where("end_date < ?", f.EndedBefore)
	}
	return db
}

var _ BookingRepository = (*GormBookingRepository)(nil)
