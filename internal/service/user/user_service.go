package user

import (
	"context"
	"log"
	"strings"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/repository"
)

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemEvictor drops cached items. Deleting a user removes their items too.
type ItemEvictor interface {
	DeleteItem(ctx context.Context, id int64) error
}

type UserService struct {
	users repository.UserRepository
	items repository.ItemRepository
	cache ItemEvictor
}

type UserServiceOption func(*UserService)

// WithItemCache evicts a deleted user's items from cache.
func WithItemCache(items repository.ItemRepository, cache ItemEvictor) UserServiceOption {
	return func(s *UserService) {
		s.items = items
		s.cache = cache
	}
}

func NewUserService(users repository.UserRepository, opts ...UserServiceOption) *UserService {
	s := &UserService{users: users}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, domain.Validation("name and email are required")
	}
	if !validEmail(email) {
		return nil, domain.Validation("invalid email %q", email)
	}

	u := &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("user %d created", u.ID)
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.Validation("name must not be blank")
		}
		current.Name = name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if !validEmail(email) {
			return nil, domain.Validation("invalid email %q", email)
		}
		current.Email = email
	}

	if err := s.users.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var owned []int64
	if s.cache != nil {
		if owned, err = s.items.ListIDsByOwner(ctx, id); err != nil {
			return nil, err
		}
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	for _, itemID := range owned {
		if err := s.cache.DeleteItem(ctx, itemID); err != nil {
			log.Printf("WARNING: evict cached item %d: %v", itemID, err)
		}
	}
	log.Printf("user %d deleted", id)
	return current, nil
}

// validEmail only requires a local part and a domain around a single @.
func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at == strings.LastIndexByte(email, '@') && at < len(email)-1
}

var _ UserUseCase = (*UserService)(nil)
