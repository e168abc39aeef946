package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUser(ctx context.Context, userID snowflake.ID) (*uadomain.Record, error)
	Save(ctx context.Context, rec *uadomain.Record) error
	DeleteByUser(ctx context.Context, userID snowflake.ID) (*uadomain.Record, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) FindByUser(ctx context.Context, userID snowflake.ID) (*uadomain.Record, error) {
	var rec uadomain.Record
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) Save(ctx context.Context, rec *uadomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// DeleteByUser removes the record and returns what was deleted, or (nil, nil)
// when no record existed.
func (r *repo) DeleteByUser(ctx context.Context, userID snowflake.ID) (*uadomain.Record, error) {
	rec, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Delete(&uadomain.Record{}, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return rec, nil
}
