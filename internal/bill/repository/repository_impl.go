package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, b *billdomain.Bill) error
	List(ctx context.Context) ([]billdomain.Bill, error)
	ListByUser(ctx context.Context, userID snowflake.ID) ([]billdomain.Bill, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, b *billdomain.Bill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repo) List(ctx context.Context) ([]billdomain.Bill, error) {
	var rows []billdomain.Bill
	err := r.db.WithContext(ctx).Order("year DESC, month DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListByUser(ctx context.Context, userID snowflake.ID) ([]billdomain.Bill, error) {
	var rows []billdomain.Bill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
