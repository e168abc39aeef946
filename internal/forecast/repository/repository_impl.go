package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, f *forecastdomain.Forecast) error
	List(ctx context.Context) ([]forecastdomain.Forecast, error)
	ListByUser(ctx context.Context, userID snowflake.ID) ([]forecastdomain.Forecast, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, f *forecastdomain.Forecast) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repo) List(ctx context.Context) ([]forecastdomain.Forecast, error) {
	var rows []forecastdomain.Forecast
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListByUser(ctx context.Context, userID snowflake.ID) ([]forecastdomain.Forecast, error) {
	var rows []forecastdomain.Forecast
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
