package repository

import (
	"context"

	"github.com/Domenick1991/shareit/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error)
}

type GormRequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	m := requestModel{
		Description: request.Description,
		RequestorID: request.RequestorID,
		Created:     request.Created,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, "request")
	}
	request.ID = m.ID
	return nil
}

func (r *GormRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	var m requestModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "request")
	}
	req := m.toDomain()
	return &req, nil
}

func (r *GormRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	var rows []requestModel
	if err := r.db.WithContext(ctx).Where("requestor_id = ?", requestorID).Order("created DESC").Find(&rows).Error; err != nil {
		return nil, translate(err, "requests")
	}
	return toRequests(rows), nil
}

func (r *GormRequestRepository) ListOthers(ctx context.Context, userID int64, page domain.Page) ([]domain.ItemRequest, error) {
	var rows []requestModel
	err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", userID).
		Order("created DESC").
		Scopes(pageScope(page)).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "requests")
	}
	return toRequests(rows), nil
}

func toRequests(rows []requestModel) []domain.ItemRequest {
	requests := make([]domain.ItemRequest, 0, len(rows))
	for _, m := range rows {
		requests = append(requests, m.toDomain())
	}
	return requests
}

var _ RequestRepository = (*GormRequestRepository)(nil)
