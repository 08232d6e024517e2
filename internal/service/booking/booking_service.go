package booking

import (
	"context"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/kafka"
	"github.com/Domenick1991/shareit/internal/metrics"
	"github.com/Domenick1991/shareit/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, bookerID int64, input CreateBookingInput) (*domain.Booking, error)
	Decide(ctx context.Context, ownerID, bookingID int64, approved bool) (*domain.Booking, error)
	Cancel(ctx context.Context, bookerID, bookingID int64) (*domain.Booking, error)
	Get(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	ListForBooker(ctx context.Context, bookerID int64, state string, page domain.Page) ([]domain.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, page domain.Page) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

type BookingService struct {
	bookings    repository.BookingRepository
	items       repository.ItemRepository
	users       repository.UserRepository
	producer    Producer
	eventsTopic string
	now         func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService wires the service. A nil producer or an empty topic
// turns event publishing off.
func NewBookingService(
	bookings repository.BookingRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		items:       items,
		users:       users,
		producer:    producer,
		eventsTopic: eventsTopic,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Create(ctx context.Context, bookerID int64, input CreateBookingInput) (*domain.Booking, error) {
	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, domain.Validation("item %d is not available", item.ID)
	}
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID == bookerID {
		return nil, domain.NotFound("owner cannot book their own item")
	}
	if err := s.validateWindow(input.Start, input.End); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Start:    *input.Start,
		End:      *input.End,
		Status:   domain.BookingStatusWaiting,
		ItemID:   item.ID,
		BookerID: bookerID,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Item = item
	booking.Booker = booker

	metrics.IncBookingCreated()
	s.publish(ctx, kafka.EventBookingCreated, booking)
	return booking, nil
}

func (s *BookingService) Decide(ctx context.Context, ownerID, bookingID int64, approved bool) (*domain.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != ownerID {
		return nil, domain.NotFound("only the item owner can change booking %d", bookingID)
	}
	switch booking.Status {
	case domain.BookingStatusApproved:
		return nil, domain.Validation("booking %d is already approved", bookingID)
	case domain.BookingStatusCanceled:
		return nil, domain.Validation("booking %d was canceled", bookingID)
	}

	status, event := domain.BookingStatusRejected, kafka.EventBookingRejected
	if approved {
		status, event = domain.BookingStatusApproved, kafka.EventBookingApproved
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	metrics.IncBookingDecision(string(status))
	s.publish(ctx, event, booking)
	return booking, nil
}

// Cancel withdraws a booking that has not started yet.
func (s *BookingService) Cancel(ctx context.Context, bookerID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != bookerID {
		return nil, domain.NotFound("only the booker can cancel booking %d", bookingID)
	}
	if booking.Status != domain.BookingStatusWaiting && booking.Status != domain.BookingStatusApproved {
		return nil, domain.Validation("booking %d is %s and cannot be canceled", bookingID, booking.Status)
	}
	if !s.now().Before(booking.Start) {
		return nil, domain.Validation("booking %d has already started", bookingID)
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCanceled); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCanceled

	metrics.IncBookingDecision(string(domain.BookingStatusCanceled))
	s.publish(ctx, kafka.EventBookingCanceled, booking)
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != userID && booking.Item.OwnerID != userID {
		return nil, domain.NotFound("only the owner or the booker can view booking %d", bookingID)
	}
	return booking, nil
}

func (s *BookingService) ListForBooker(ctx context.Context, bookerID int64, state string, page domain.Page) ([]domain.Booking, error) {
	return s.listByState(ctx, bookerID, state, page, s.bookings.ListByBooker)
}

func (s *BookingService) ListForOwner(ctx context.Context, ownerID int64, state string, page domain.Page) ([]domain.Booking, error) {
	return s.listByState(ctx, ownerID, state, page, s.bookings.ListByOwner)
}

type lister func(ctx context.Context, userID int64, filter repository.BookingFilter, page domain.Page) ([]domain.Booking, error)

// listByState routes a state onto repository filters. FUTURE reads the
// approved and waiting pages separately and merges them by start, newest first.
func (s *BookingService) listByState(ctx context.Context, userID int64, rawState string, page domain.Page, list lister) ([]domain.Booking, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("user %d not found", userID)
	}
	state, err := domain.ParseBookingState(rawState)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch state {
	case domain.BookingStateAll:
		return list(ctx, userID, repository.BookingFilter{}, page)
	case domain.BookingStateCurrent:
		return list(ctx, userID, repository.BookingFilter{StartedBefore: now, EndsAfter: now}, page)
	case domain.BookingStatePast:
		return list(ctx, userID, repository.BookingFilter{EndedBefore: now}, page)
	case domain.BookingStateWaiting:
		return list(ctx, userID, repository.BookingFilter{Status: domain.BookingStatusWaiting}, page)
	case domain.BookingStateRejected:
		return list(ctx, userID, repository.BookingFilter{Status: domain.BookingStatusRejected}, page)
	case domain.BookingStateFuture:
		approved, err := list(ctx, userID, repository.BookingFilter{Status: domain.BookingStatusApproved, StartsAfter: now}, page)
		if err != nil {
			return nil, err
		}
		waiting, err := list(ctx, userID, repository.BookingFilter{Status: domain.BookingStatusWaiting, StartsAfter: now}, page)
		if err != nil {
			return nil, err
		}
		merged := append(approved, waiting...)
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].Start.After(merged[j].Start)
		})
		if len(merged) > page.Limit() {
			merged = merged[:page.Limit()]
		}
		return merged, nil
	default:
		return nil, domain.ErrUnknownState
	}
}

func (s *BookingService) validateWindow(start, end *time.Time) error {
	if start == nil || end == nil {
		return domain.Validation("start and end are required")
	}
	if !end.After(*start) {
		return domain.Validation("end must be after start")
	}
	if start.Before(s.now()) {
		return domain.Validation("start must not be in the past")
	}
	return nil
}

// load reads a booking and makes sure its item is attached.
func (s *BookingService) load(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item == nil {
		item, err := s.items.GetByID(ctx, booking.ItemID)
		if err != nil {
			return nil, err
		}
		booking.Item = item
	}
	return booking, nil
}

// publish never fails the request; a lost event only costs a notification.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		BookerID:  booking.BookerID,
		Status:    string(booking.Status),
		Start:     booking.Start,
		End:       booking.End,
	}
	if booking.Item != nil {
		event.ItemName = booking.Item.Name
		event.OwnerID = booking.Item.OwnerID
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, strconv.FormatInt(booking.ID, 10), event); err != nil {
		log.Printf("WARNING: Failed to publish %s event for booking %d: %v", eventType, booking.ID, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
