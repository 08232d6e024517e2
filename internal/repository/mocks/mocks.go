// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/repository"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ItemRepository) ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *ItemRepository) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *ItemRepository) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	args := m.Called(ctx, text, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *ItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]domain.Item), args.Error(1)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *BookingRepository) ListByBooker(ctx context.Context, bookerID int64, filter repository.BookingFilter, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, filter, page)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *BookingRepository) ListByOwner(ctx context.Context, ownerID int64, filter repository.BookingFilter, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, filter, page)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *BookingRepository) LastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *BookingRepository) NextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *BookingRepository) HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
}

type RequestRepository struct {
	mock.Mock
}

func (m *RequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

func (m *RequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

func (m *RequestRepository) ListOthers(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.ItemRepository    = (*ItemRepository)(nil)
	_ repository.BookingRepository = (*BookingRepository)(nil)
	_ repository.RequestRepository = (*RequestRepository)(nil)
	_ repository.CommentRepository = (*CommentRepository)(nil)
)
