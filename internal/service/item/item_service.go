package item

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/repository"
)

type ItemUseCase interface {
	Get(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error)
	ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.ItemDetails, error)
	Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error)
	Create(ctx context.Context, ownerID int64, input CreateItemInput) (*domain.Item, error)
	Update(ctx context.Context, ownerID, itemID int64, patch domain.ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID int64) (*domain.Item, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error)
}

// Cache keeps item records by id. A nil Cache disables caching.
type Cache interface {
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	SetItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int64) error
}

type CreateItemInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type ItemService struct {
	items    repository.ItemRepository
	users    repository.UserRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository
	requests repository.RequestRepository
	cache    Cache
	now      func() time.Time
}

type ItemServiceOption func(*ItemService)

func WithCache(cache Cache) ItemServiceOption {
	return func(s *ItemService) {
		s.cache = cache
	}
}

func WithClock(now func() time.Time) ItemServiceOption {
	return func(s *ItemService) {
		s.now = now
	}
}

func NewItemService(
	items repository.ItemRepository,
	users repository.UserRepository,
	bookings repository.BookingRepository,
	comments repository.CommentRepository,
	requests repository.RequestRepository,
	opts ...ItemServiceOption,
) *ItemService {
	service := &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ItemService) Get(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error) {
	item, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &domain.ItemDetails{Item: *item}
	if item.OwnerID == userID {
		if err := s.fillBookings(ctx, details); err != nil {
			return nil, err
		}
	}

	comments, err := s.comments.ListByItemIDs(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}
	details.Comments = comments
	return details, nil
}

func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.ItemDetails, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	comments, err := s.comments.ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]domain.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	result := make([]domain.ItemDetails, 0, len(items))
	for _, it := range items {
		details := domain.ItemDetails{Item: it, Comments: byItem[it.ID]}
		if details.Comments == nil {
			details.Comments = []domain.Comment{}
		}
		if err := s.fillBookings(ctx, &details); err != nil {
			return nil, err
		}
		result = append(result, details)
	}
	return result, nil
}

func (s *ItemService) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Item{}, nil
	}
	return s.items.Search(ctx, text, page)
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, input CreateItemInput) (*domain.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Description == nil || strings.TrimSpace(*input.Description) == "" || input.Available == nil {
		return nil, domain.Validation("name, description and available are required")
	}
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if input.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *input.RequestID); err != nil {
			return nil, err
		}
	}

	item := &domain.Item{
		Name:        name,
		Description: strings.TrimSpace(*input.Description),
		Available:   *input.Available,
		OwnerID:     ownerID,
		RequestID:   input.RequestID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	log.Printf("item %d created by user %d", item.ID, ownerID)
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	item, err := s.owned(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.Validation("name must not be blank")
		}
		item.Name = name
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return nil, domain.Validation("description must not be blank")
		}
		item.Description = description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, itemID)
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, ownerID, itemID int64) (*domain.Item, error) {
	item, err := s.owned(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	s.invalidate(ctx, itemID)
	log.Printf("item %d deleted by user %d", itemID, ownerID)
	return item, nil
}

// AddComment lets a user review an item after an approved booking of it has ended.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Validation("comment text must not be empty")
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	ok, err := s.bookings.HasFinishedApproved(ctx, itemID, userID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Validation("user %d has no finished booking of item %d", userID, itemID)
	}

	comment := &domain.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *ItemService) fillBookings(ctx context.Context, details *domain.ItemDetails) error {
	now := s.now()
	last, err := s.bookings.LastApproved(ctx, details.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookings.NextApproved(ctx, details.ID, now)
	if err != nil {
		return err
	}
	details.LastBooking = last
	details.NextBooking = next
	return nil
}

// load reads an item through the cache.
func (s *ItemService) load(ctx context.Context, itemID int64) (*domain.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.GetItem(ctx, itemID)
		if err != nil {
			log.Printf("WARNING: read cached item %d: %v", itemID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item); err != nil {
			log.Printf("WARNING: cache item %d: %v", itemID, err)
		}
	}
	return item, nil
}

// owned reads the item from the repository and checks that ownerID owns it.
func (s *ItemService) owned(ctx context.Context, ownerID, itemID int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, domain.NotFound("item %d is not owned by user %d", itemID, ownerID)
	}
	return item, nil
}

func (s *ItemService) invalidate(ctx context.Context, itemID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteItem(ctx, itemID); err != nil {
		log.Printf("WARNING: evict item %d: %v", itemID, err)
	}
}

func (s *ItemService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("user %d not found", userID)
	}
	return nil
}

var _ ItemUseCase = (*ItemService)(nil)
