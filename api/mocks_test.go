package api

import (
	"context"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/service/booking"
	"github.com/Domenick1991/shareit/internal/service/item"
	"github.com/Domenick1991/shareit/internal/service/request"
	"github.com/Domenick1991/shareit/internal/service/user"
	"github.com/stretchr/testify/mock"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Create(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockItemUseCase struct {
	mock.Mock
}

func (m *MockItemUseCase) Get(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemDetails), args.Error(1)
}

func (m *MockItemUseCase) ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.ItemDetails, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]domain.ItemDetails), args.Error(1)
}

func (m *MockItemUseCase) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	args := m.Called(ctx, text, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemUseCase) Create(ctx context.Context, ownerID int64, input item.CreateItemInput) (*domain.Item, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUseCase) Update(ctx context.Context, ownerID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	args := m.Called(ctx, ownerID, itemID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUseCase) Delete(ctx context.Context, ownerID, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUseCase) AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	args := m.Called(ctx, userID, itemID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, bookerID int64, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, bookerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Decide(ctx context.Context, ownerID, bookingID int64, approved bool) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, bookerID, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Get(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListForBooker(ctx context.Context, bookerID int64, state string, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, state, page)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListForOwner(ctx context.Context, ownerID int64, state string, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, state, page)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRequestUseCase struct {
	mock.Mock
}

func (m *MockRequestUseCase) Create(ctx context.Context, requestorID int64, description string) (*domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

func (m *MockRequestUseCase) ListOwn(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

func (m *MockRequestUseCase) ListOthers(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

func (m *MockRequestUseCase) Get(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, userID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

var (
	_ user.UserUseCase       = (*MockUserUseCase)(nil)
	_ item.ItemUseCase       = (*MockItemUseCase)(nil)
	_ booking.BookingUseCase = (*MockBookingUseCase)(nil)
	_ request.RequestUseCase = (*MockRequestUseCase)(nil)
)
