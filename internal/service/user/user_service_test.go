package user

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEvictor struct {
	mock.Mock
}

func (m *MockEvictor) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUserService_Create_Success(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 1
	}).Return(nil).Once()

	u, err := service.Create(ctx, CreateUserInput{Name: " Ann ", Email: "ann@example.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "ann@example.com", u.Email)
	repo.AssertExpectations(t)
}

func TestUserService_Create_ValidationErrors(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)

	testCases := []struct {
		name  string
		input CreateUserInput
	}{
		{name: "empty name", input: CreateUserInput{Email: "a@b.c"}},
		{name: "empty email", input: CreateUserInput{Name: "Ann"}},
		{name: "no at sign", input: CreateUserInput{Name: "Ann", Email: "ann.example.com"}},
		{name: "two at signs", input: CreateUserInput{Name: "Ann", Email: "a@b@c"}},
		{name: "no domain", input: CreateUserInput{Name: "Ann", Email: "ann@"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := service.Create(context.Background(), tc.input)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	repo.AssertNotCalled(t, "Create")
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(domain.Conflict("user with this email already exists")).Once()

	_, err := service.Create(ctx, CreateUserInput{Name: "Ann", Email: "ann@example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_Update_Partial(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Ann", Email: "ann@example.com"}, nil).Once()
	repo.On("Update", ctx, &domain.User{ID: 1, Name: "Ann", Email: "new@example.com"}).Return(nil).Once()

	email := "new@example.com"
	u, err := service.Update(ctx, 1, domain.UserPatch{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "new@example.com", u.Email)
	repo.AssertExpectations(t)
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(9)).Return(nil, domain.NotFound("user not found")).Once()

	name := "Bob"
	_, err := service.Update(ctx, 9, domain.UserPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestUserService_Update_BlankName(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Ann", Email: "ann@example.com"}, nil).Once()

	blank := "  "
	_, err := service.Update(ctx, 1, domain.UserPatch{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Update")
}

func TestUserService_Delete(t *testing.T) {
	repo := &mocks.UserRepository{}
	service := NewUserService(repo)
	ctx := context.Background()

	existing := &domain.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
	repo.On("GetByID", ctx, int64(2)).Return(existing, nil).Once()
	repo.On("Delete", ctx, int64(2)).Return(nil).Once()

	u, err := service.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, existing, u)
	repo.AssertExpectations(t)
}

func TestUserService_Delete_EvictsOwnedItems(t *testing.T) {
	repo := &mocks.UserRepository{}
	items := &mocks.ItemRepository{}
	cache := &MockEvictor{}
	service := NewUserService(repo, WithItemCache(items, cache))
	ctx := context.Background()

	existing := &domain.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
	repo.On("GetByID", ctx, int64(2)).Return(existing, nil).Once()
	items.On("ListIDsByOwner", ctx, int64(2)).Return([]int64{10, 11}, nil).Once()
	repo.On("Delete", ctx, int64(2)).Return(nil).Once()
	cache.On("DeleteItem", ctx, int64(10)).Return(nil).Once()
	cache.On("DeleteItem", ctx, int64(11)).Return(errors.New("connection refused")).Once()

	u, err := service.Delete(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, existing, u)
	repo.AssertExpectations(t)
	items.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUserService_Delete_FailureKeepsCache(t *testing.T) {
	repo := &mocks.UserRepository{}
	items := &mocks.ItemRepository{}
	cache := &MockEvictor{}
	service := NewUserService(repo, WithItemCache(items, cache))
	ctx := context.Background()

	existing := &domain.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
	repo.On("GetByID", ctx, int64(2)).Return(existing, nil).Once()
	items.On("ListIDsByOwner", ctx, int64(2)).Return([]int64{10}, nil).Once()
	repo.On("Delete", ctx, int64(2)).Return(errors.New("db down")).Once()

	_, err := service.Delete(ctx, 2)

	require.Error(t, err)
	cache.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}
