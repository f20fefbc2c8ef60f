package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) error
	List(ctx context.Context, page, pageSize int) ([]db_models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) List(ctx context.Context, page, pageSize int) ([]db_models.User, int64, error) {
	var total int64
	if err := u.db.WithContext(ctx).Model(&db_models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []db_models.User
	err := u.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}
