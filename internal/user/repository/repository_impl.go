package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, u *userdomain.User) error
	FindByEmail(ctx context.Context, email string) (*userdomain.User, error)
	FindByID(ctx context.Context, id snowflake.ID) (*userdomain.User, error)
	List(ctx context.Context) ([]userdomain.User, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, u *userdomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var u userdomain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*userdomain.User, error) {
	var u userdomain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) List(ctx context.Context) ([]userdomain.User, error) {
	var users []userdomain.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
