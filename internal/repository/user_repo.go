package repository

import (
	"context"

	"github.com/Domenick1991/shareit/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translate(err, "users")
	}
	users := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, m.toDomain())
	}
	return users, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "user")
	}
	u := m.toDomain()
	return &u, nil
}

func (r *GormUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err, "user")
	}
	return n > 0, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	m := newUserModel(user)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err, "user with this email")
	}
	user.ID = m.ID
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	m := newUserModel(user)
	res := r.db.WithContext(ctx).Model(&userModel{ID: user.ID}).Updates(map[string]any{
		"name":  m.Name,
		"email": m.Email,
	})
	if res.Error != nil {
		return translate(res.Error, "user with this email")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("user %d not found", user.ID)
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if res.Error != nil {
		return translate(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("user %d not found", id)
	}
	return nil
}

var _ UserRepository = (*GormUserRepository)(nil)
