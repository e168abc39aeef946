// Package domain contains forecast records sourced from the external
// prediction service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Forecast is one prediction run. The four predicted numbers are flattened
// into columns so that the admin dashboard can aggregate them in SQL; the
// wire shape keeps the nested predictions object.
type Forecast struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id,string"`
	UserID           snowflake.ID `gorm:"not null;index" json:"user,string"`
	Month            int          `gorm:"not null" json:"month"`
	Year             int          `gorm:"not null" json:"year"`
	ThisMonthKwh     float64      `gorm:"not null" json:"-"`
	ThisMonthBillLkr float64      `gorm:"not null" json:"-"`
	NextMonthKwh     float64      `gorm:"not null" json:"-"`
	NextMonthBillLkr float64      `gorm:"not null" json:"-"`
	ModelVersion     string       `gorm:"type:text;not null;default:svm-v1" json:"modelVersion"`
	CreatedAt        time.Time    `gorm:"not null;index" json:"created_at"`
}

func (Forecast) TableName() string { return "forecasts" }

type MonthPrediction struct {
	PredictedKwh     float64 `json:"predicted_kwh"`
	PredictedBillLkr float64 `json:"predicted_bill_lkr"`
}

type Predictions struct {
	ThisMonth MonthPrediction `json:"this_month"`
	NextMonth MonthPrediction `json:"next_month"`
}

type CreateRequest struct {
	User         string       `json:"user"`
	Month        int          `json:"month"`
	Year         int          `json:"year"`
	Predictions  *Predictions `json:"predictions"`
	ModelVersion string       `json:"modelVersion,omitempty"`
}

// Response is the wire shape with the nested predictions object restored.
type Response struct {
	ID           string      `json:"id"`
	User         string      `json:"user"`
	Month        int         `json:"month"`
	Year         int         `json:"year"`
	Predictions  Predictions `json:"predictions"`
	ModelVersion string      `json:"modelVersion"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (f *Forecast) ToResponse() Response {
	return Response{
		ID:    f.ID.String(),
		User:  f.UserID.String(),
		Month: f.Month,
		Year:  f.Year,
		Predictions: Predictions{
			ThisMonth: MonthPrediction{PredictedKwh: f.ThisMonthKwh, PredictedBillLkr: f.ThisMonthBillLkr},
			NextMonth: MonthPrediction{PredictedKwh: f.NextMonthKwh, PredictedBillLkr: f.NextMonthBillLkr},
		},
		ModelVersion: f.ModelVersion,
		CreatedAt:    f.CreatedAt,
	}
}

type Service interface {
	Add(ctx context.Context, req CreateRequest) (*Response, error)
	// List returns all forecasts newest-first.
	List(ctx context.Context) ([]Response, error)
	ListByUser(ctx context.Context, userID string) ([]Response, error)
}

var (
	ErrMissingFields = errors.New("missing_required_fields")
	ErrInvalidUserID = errors.New("invalid_user_id")
)
