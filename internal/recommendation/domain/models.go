// Package domain contains per-user budget recommendations, keyed by
// (user, month, year).
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Recommendation struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id,string"`
	UserID snowflake.ID `gorm:"not null;uniqueIndex:idx_recommendation_user_month_year" json:"user,string"`
	Month  int          `gorm:"not null;uniqueIndex:idx_recommendation_user_month_year" json:"month"`
	Year   int          `gorm:"not null;uniqueIndex:idx_recommendation_user_month_year" json:"year"`

	// HoursPerDay maps appliance name to the recommended daily hours.
	HoursPerDay datatypes.JSONType[map[string]float64] `gorm:"column:recommended_hours_per_day;not null" json:"recommended_hours_per_day"`
	CreatedAt   time.Time                              `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time                              `gorm:"not null" json:"updated_at"`
}

func (Recommendation) TableName() string { return "user_recommendations" }

type UpsertRequest struct {
	User        string             `json:"user"`
	Month       int                `json:"month"`
	Year        int                `json:"year"`
	HoursPerDay map[string]float64 `json:"recommended_hours_per_day"`
}

type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*Recommendation, error)
	// GetLatestByUser returns the recommendation with the greatest
	// (year, month), or nil when none exists.
	GetLatestByUser(ctx context.Context, userID string) (*Recommendation, error)
}

var (
	ErrMissingFields = errors.New("missing_required_fields")
	ErrInvalidUserID = errors.New("invalid_user_id")
	ErrInvalidMonth  = errors.New("invalid_month")
)
