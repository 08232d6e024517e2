package repository

import (
	"context"
	"strings"

	"github.com/Domenick1991/shareit/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.Item, error)
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}

type GormItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "item")
	}
	item := m.toDomain()
	return &item, nil
}

func (r *GormItemRepository) Create(ctx context.Context, item *domain.Item) error {
	m := newItemModel(item)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, "item")
	}
	item.ID = m.ID
	return nil
}

func (r *GormItemRepository) Update(ctx context.Context, item *domain.Item) error {
	m := newItemModel(item)
	res := r.db.WithContext(ctx).Model(&itemModel{ID: item.ID}).Updates(map[string]any{
		"name":        m.Name,
		"description": m.Description,
		"available":   m.Available,
	})
	if res.Error != nil {
		return translate(res.Error, "item")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("item %d not found", item.ID)
	}
	return nil
}

func (r *GormItemRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&itemModel{}, id)
	if res.Error != nil {
		return translate(res.Error, "item")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("item %d not found", id)
	}
	return nil
}

func (r *GormItemRepository) ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]domain.Item, error) {
	var rows []itemModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Scopes(pageScope(page)).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "items")
	}
	return toItems(rows), nil
}

func (r *GormItemRepository) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&itemModel{}).
		Where("owner_id = ?", ownerID).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translate(err, "items")
	}
	return ids, nil
}

func (r *GormItemRepository) Search(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	var rows []itemModel
	err := r.db.WithContext(ctx).
		Scopes(searchScope(text), pageScope(page)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "items")
	}
	return toItems(rows), nil
}

func (r *GormItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return []domain.Item{}, nil
	}
	var rows []itemModel
	if err := r.db.WithContext(ctx).Where("request_id IN ?", requestIDs).Order("id").Find(&rows).Error; err != nil {
		return nil, translate(err, "items")
	}
	return toItems(rows), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// searchScope matches available items by name or description, ignoring case.
// Wildcards in text match literally.
func searchScope(text string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("available = ?", true).
			Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
}

func toItems(rows []itemModel) []domain.Item {
	items := make([]domain.Item, 0, len(rows))
	for _, m := range rows {
		items = append(items, m.toDomain())
	}
	return items
}

var _ ItemRepository = (*GormItemRepository)(nil)
