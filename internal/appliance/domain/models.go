// Package domain contains the appliance catalog model.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Appliance is static reference data describing a household appliance type.
type Appliance struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	Name      string       `gorm:"type:text;not null;uniqueIndex" json:"name"`
	TypicalW  float64      `gorm:"not null" json:"typical_w"`
	MinW      float64      `gorm:"not null" json:"min_w"`
	MaxW      float64      `gorm:"not null" json:"max_w"`
	StandbyW  float64      `gorm:"not null" json:"standby_w"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (Appliance) TableName() string { return "appliances" }

type UploadRow struct {
	Name     string  `json:"name"`
	TypicalW float64 `json:"typical_w"`
	MinW     float64 `json:"min_w"`
	MaxW     float64 `json:"max_w"`
	StandbyW float64 `json:"standby_w"`
}

type Service interface {
	BulkUpsert(ctx context.Context, rows []UploadRow) (int, error)
	List(ctx context.Context) ([]Appliance, error)
}

var ErrMissingName = errors.New("missing_appliance_name")
