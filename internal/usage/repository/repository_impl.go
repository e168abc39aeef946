package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
	"gorm.io/gorm"
)

type Repository interface {
	InsertRecord(ctx context.Context, rec *usagedomain.Record) error
	ListRecords(ctx context.Context) ([]usagedomain.Record, error)
	ListRecordsByUser(ctx context.Context, userID snowflake.ID) ([]usagedomain.Record, error)
	InsertSurvey(ctx context.Context, sv *usagedomain.Survey) error
	ListSurveysByUser(ctx context.Context, userID snowflake.ID) ([]usagedomain.Survey, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) InsertRecord(ctx context.Context, rec *usagedomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repo) ListRecords(ctx context.Context) ([]usagedomain.Record, error) {
	var rows []usagedomain.Record
	err := r.db.WithContext(ctx).Order("recorded_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListRecordsByUser(ctx context.Context, userID snowflake.ID) ([]usagedomain.Record, error) {
	var rows []usagedomain.Record
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) InsertSurvey(ctx context.Context, sv *usagedomain.Survey) error {
	return r.db.WithContext(ctx).Create(sv).Error
}

func (r *repo) ListSurveysByUser(ctx context.Context, userID snowflake.ID) ([]usagedomain.Survey, error) {
	var rows []usagedomain.Survey
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
