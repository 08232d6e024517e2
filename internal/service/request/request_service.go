package request

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/repository"
)

type RequestUseCase interface {
	Create(ctx context.Context, requestorID int64, description string) (*domain.ItemRequest, error)
	ListOwn(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error)
	Get(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error)
}

type RequestService struct {
	requests repository.RequestRepository
	items    repository.ItemRepository
	users    repository.UserRepository
	now      func() time.Time
}

type RequestServiceOption func(*RequestService)

func WithClock(now func() time.Time) RequestServiceOption {
	return func(s *RequestService) {
		s.now = now
	}
}

func NewRequestService(
	requests repository.RequestRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	opts ...RequestServiceOption,
) *RequestService {
	service := &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *RequestService) Create(ctx context.Context, requestorID int64, description string) (*domain.ItemRequest, error) {
	if err := s.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.Validation("description must not be empty")
	}

	request := &domain.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     s.now(),
		Items:       []domain.Item{},
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) ListOwn(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	if err := s.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}
	requests, err := s.requests.ListByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// ListOthers pages through requests made by everyone except userID.
func (s *RequestService) ListOthers(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requests.ListOthers(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *RequestService) Get(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	withItems, err := s.attachItems(ctx, []domain.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &withItems[0], nil
}

// attachItems loads answers for all requests with a single query.
func (s *RequestService) attachItems(ctx context.Context, requests []domain.ItemRequest) ([]domain.ItemRequest, error) {
	if len(requests) == 0 {
		return []domain.ItemRequest{}, nil
	}
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	items, err := s.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]domain.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for i := range requests {
		requests[i].Items = byRequest[requests[i].ID]
		if requests[i].Items == nil {
			requests[i].Items = []domain.Item{}
		}
	}
	return requests, nil
}

func (s *RequestService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("user %d not found", userID)
	}
	return nil
}

var _ RequestUseCase = (*RequestService)(nil)
