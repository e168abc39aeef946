// Package domain contains persisted monthly bill records.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Bill struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id,string"`
	UserID           snowflake.ID `gorm:"not null;index" json:"user,string"`
	Month            int          `gorm:"not null" json:"month"`
	Year             int          `gorm:"not null" json:"year"`
	TotalConsumption float64      `gorm:"not null" json:"totalConsumption"`
	TotalAmount      float64      `gorm:"not null" json:"totalAmount"`
	TariffRate       float64      `json:"tariffRate"`
	Paid             bool         `gorm:"not null;default:false" json:"paid"`
	CreatedAt        time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null" json:"updated_at"`
}

func (Bill) TableName() string { return "bills" }

type CreateRequest struct {
	User             string   `json:"user"`
	Month            *int     `json:"month"`
	Year             *int     `json:"year"`
	TotalConsumption *float64 `json:"totalConsumption"`
	TotalAmount      *float64 `json:"totalAmount"`
	TariffRate       float64  `json:"tariffRate"`
	Paid             bool     `json:"paid"`
}

type Service interface {
	Add(ctx context.Context, req CreateRequest) (*Bill, error)
	List(ctx context.Context) ([]Bill, error)
	ListByUser(ctx context.Context, userID string) ([]Bill, error)
}

var (
	ErrMissingFields = errors.New("missing_required_fields")
	ErrInvalidUserID = errors.New("invalid_user_id")
)
