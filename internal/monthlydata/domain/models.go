// Package domain contains per-month calendar reference data fed to the
// prediction services.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type MonthlyData struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id,string"`
	Month          int          `gorm:"not null;uniqueIndex" json:"month"`
	MonthName      string       `gorm:"type:text;not null" json:"month_name"`
	AvgTempC       float64      `gorm:"not null" json:"avg_temp_c"`
	RainyDays      int          `gorm:"not null" json:"rainy_days"`
	PublicHolidays int          `gorm:"not null" json:"public_holidays"`
	CreatedAt      time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null" json:"updated_at"`
}

func (MonthlyData) TableName() string { return "monthly_data" }

type UploadRow struct {
	Month          int     `json:"month"`
	MonthName      string  `json:"month_name"`
	AvgTempC       float64 `json:"avg_temp_c"`
	RainyDays      int     `json:"rainy_days"`
	PublicHolidays int     `json:"public_holidays"`
}

type Service interface {
	BulkUpsert(ctx context.Context, rows []UploadRow) (int, error)
	List(ctx context.Context) ([]MonthlyData, error)
}

var ErrInvalidMonth = errors.New("invalid_month")
