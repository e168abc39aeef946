package repository

import (
	"context"

	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	UpsertBatch(ctx context.Context, rows []appliancedomain.Appliance) error
	List(ctx context.Context) ([]appliancedomain.Appliance, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) UpsertBatch(ctx context.Context, rows []appliancedomain.Appliance) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"typical_w", "min_w", "max_w", "standby_w", "updated_at",
		}),
	}).Create(&rows).Error
}

func (r *repo) List(ctx context.Context) ([]appliancedomain.Appliance, error) {
	var rows []appliancedomain.Appliance
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
