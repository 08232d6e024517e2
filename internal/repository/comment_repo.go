package repository

import (
	"context"

	"github.com/Domenick1991/shareit/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error)
}

type GormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	m := commentModel{
		Text:     comment.Text,
		ItemID:   comment.ItemID,
		AuthorID: comment.AuthorID,
		Created:  comment.Created,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, "comment")
	}
	comment.ID = m.ID
	return nil
}

func (r *GormCommentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	if len(itemIDs) == 0 {
		return []domain.Comment{}, nil
	}
	var rows []commentModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, "comments")
	}
	comments := make([]domain.Comment, 0, len(rows))
	for _, m := range rows {
		comments = append(comments, m.toDomain())
	}
	return comments, nil
}

var _ CommentRepository = (*GormCommentRepository)(nil)
