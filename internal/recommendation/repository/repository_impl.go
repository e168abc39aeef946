package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, rec *recdomain.Recommendation) error
	FindLatestByUser(ctx context.Context, userID snowflake.ID) (*recdomain.Recommendation, error)
	Find(ctx context.Context, userID snowflake.ID, month, year int) (*recdomain.Recommendation, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

// Upsert inserts or, on a (user_id, month, year) conflict, replaces the
// recommended hours.
func (r *repo) Upsert(ctx context.Context, rec *recdomain.Recommendation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"recommended_hours_per_day", "updated_at",
		}),
	}).Create(rec).Error
}

func (r *repo) FindLatestByUser(ctx context.Context, userID snowflake.ID) (*recdomain.Recommendation, error) {
	var rec recdomain.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) Find(ctx context.Context, userID snowflake.ID, month, year int) (*recdomain.Recommendation, error) {
	var rec recdomain.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
