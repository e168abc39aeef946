// Package domain contains the per-user appliance list model. One record per
// user; writes replace the whole list.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ApplianceHours pairs an appliance name with its daily usage hours.
type ApplianceHours struct {
	Name        string  `json:"name"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

type Record struct {
	ID         snowflake.ID                         `gorm:"primaryKey" json:"id,string"`
	UserID     snowflake.ID                         `gorm:"not null;uniqueIndex" json:"user_id,string"`
	Location   string                               `gorm:"type:text" json:"location"`
	Appliances datatypes.JSONType[[]ApplianceHours] `gorm:"not null" json:"appliances"`
	CreatedAt  time.Time                            `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time                            `gorm:"not null" json:"updated_at"`
}

func (Record) TableName() string { return "user_appliances" }

type UpsertRequest struct {
	Location   string           `json:"location"`
	Appliances []ApplianceHours `json:"appliances"`
}

// GetResponse is the read shape. A user with no record gets an empty list and
// an informational message rather than an error.
type GetResponse struct {
	UserID     string           `json:"user_id"`
	Location   string           `json:"location,omitempty"`
	Appliances []ApplianceHours `json:"appliances"`
	Message    string           `json:"message,omitempty"`
	CreatedAt  *time.Time       `json:"created_at,omitempty"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
}

type DeleteResponse struct {
	Message    string           `json:"message"`
	UserID     string           `json:"user_id"`
	Location   string           `json:"location"`
	Appliances []ApplianceHours `json:"appliances"`
}

type Service interface {
	Upsert(ctx context.Context, userID string, req UpsertRequest) (*GetResponse, error)
	Get(ctx context.Context, userID string) (*GetResponse, error)
	Delete(ctx context.Context, userID string) (*DeleteResponse, error)
}

var (
	ErrInvalidUserID  = errors.New("invalid_user_id")
	ErrRecordNotFound = errors.New("user_appliances_not_found")
)
