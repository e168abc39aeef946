// Package domain contains the append-only usage log and the usage survey.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"gorm.io/datatypes"
)

// Record is one logged usage entry. The log is never updated in place.
type Record struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id,string"`
	UserID      snowflake.ID `gorm:"not null;index" json:"user,string"`
	ApplianceID snowflake.ID `gorm:"not null;index" json:"appliance,string"`
	UsageHours  float64      `gorm:"not null" json:"usageHours"`
	RecordedAt  time.Time    `gorm:"not null" json:"date"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
}

func (Record) TableName() string { return "usage_records" }

// Survey is a household usage questionnaire submission.
type Survey struct {
	ID          snowflake.ID                                  `gorm:"primaryKey" json:"id,string"`
	UserID      snowflake.ID                                  `gorm:"not null;index" json:"user,string"`
	People      int                                           `gorm:"not null" json:"people"`
	Month       int                                           `gorm:"not null" json:"month"`
	Appliances  datatypes.JSONType[[]uadomain.ApplianceHours] `gorm:"not null" json:"appliances"`
	SubmittedAt time.Time                                     `gorm:"not null" json:"submittedAt"`
	CreatedAt   time.Time                                     `gorm:"not null" json:"created_at"`
}

func (Survey) TableName() string { return "usage_surveys" }

type LogRequest struct {
	User       string     `json:"user"`
	Appliance  string     `json:"appliance"`
	UsageHours *float64   `json:"usageHours"`
	Date       *time.Time `json:"date,omitempty"`
}

type SurveyRequest struct {
	User       string                    `json:"user"`
	People     int                       `json:"people"`
	Month      int                       `json:"month"`
	Appliances []uadomain.ApplianceHours `json:"appliances"`
}

type Service interface {
	Log(ctx context.Context, req LogRequest) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	SubmitSurvey(ctx context.Context, req SurveyRequest) (*Survey, error)
	ListSurveysByUser(ctx context.Context, userID string) ([]Survey, error)
}

var (
	ErrMissingFields = errors.New("missing_required_fields")
	ErrInvalidUserID = errors.New("invalid_user_id")
	ErrInvalidMonth  = errors.New("invalid_month")
)
