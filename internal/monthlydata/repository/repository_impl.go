package repository

import (
	"context"

	mddomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	UpsertBatch(ctx context.Context, rows []mddomain.MonthlyData) error
	List(ctx context.Context) ([]mddomain.MonthlyData, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) UpsertBatch(ctx context.Context, rows []mddomain.MonthlyData) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"month_name", "avg_temp_c", "rainy_days", "public_holidays", "updated_at",
		}),
	}).Create(&rows).Error
}

func (r *repo) List(ctx context.Context) ([]mddomain.MonthlyData, error) {
	var rows []mddomain.MonthlyData
	err := r.db.WithContext(ctx).Order("month ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
