package repository

import (
	"context"

	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	"gorm.io/gorm"
)

type Repository interface {
	InsertBatch(ctx context.Context, rows []tariffdomain.Tariff) error
	ListByScheme(ctx context.Context, scheme string) ([]tariffdomain.Tariff, error)
	ListAll(ctx context.Context) ([]tariffdomain.Tariff, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) InsertBatch(ctx context.Context, rows []tariffdomain.Tariff) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repo) ListByScheme(ctx context.Context, scheme string) ([]tariffdomain.Tariff, error) {
	var rows []tariffdomain.Tariff
	err := r.db.WithContext(ctx).
		Where("scheme = ?", scheme).
		Order("kwh_from ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListAll(ctx context.Context) ([]tariffdomain.Tariff, error) {
	var rows []tariffdomain.Tariff
	err := r.db.WithContext(ctx).Order("scheme ASC, kwh_from ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
