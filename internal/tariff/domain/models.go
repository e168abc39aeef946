// Package domain contains the tariff reference model and the bill
// computation contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	// SchemeLow applies to households consuming at most 60 units a month.
	SchemeLow = "<=60"
	// SchemeHigh applies above 60 units.
	SchemeHigh = ">60"
)

// Tariff is one block row of the reference tariff table. KwhTo nil means the
// block is unbounded above.
type Tariff struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id,string"`
	Scheme          string       `gorm:"type:text;not null;index" json:"scheme"`
	Block           string       `gorm:"type:text;not null" json:"block"`
	KwhFrom         float64      `gorm:"not null" json:"kwh_from"`
	KwhTo           *float64     `json:"kwh_to"`
	EnergyLkrPerKwh float64      `gorm:"not null" json:"energy_lkr_per_kwh"`
	FixedLkr        float64      `gorm:"not null" json:"fixed_lkr"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`
}

func (Tariff) TableName() string { return "tariffs" }

// Block is the engine-facing view of a tariff block.
type Block struct {
	Label         string   `json:"block"`
	KwhFrom       float64  `json:"kwh_from"`
	KwhTo         *float64 `json:"kwh_to"`
	RateLkrPerKwh float64  `json:"energy_lkr_per_kwh"`
}

// BlockCharge is one line of a bill breakdown.
type BlockCharge struct {
	Block         string  `json:"block"`
	Kwh           float64 `json:"kwh"`
	RateLkrPerKwh float64 `json:"rate_lkr_per_kwh"`
	AmountLkr     float64 `json:"amount_lkr"`
}

// Computation is the result of pricing a monthly consumption figure.
type Computation struct {
	ConsumptionKwh float64       `json:"consumption_kwh"`
	EnergyLkr      float64       `json:"energy_lkr"`
	FixedLkr       float64       `json:"fixed_lkr"`
	TotalLkr       float64       `json:"total_lkr"`
	Breakdown      []BlockCharge `json:"breakdown"`
}

type UploadRow struct {
	Scheme          string   `json:"scheme"`
	Block           string   `json:"block"`
	KwhFrom         float64  `json:"kwh_from"`
	KwhTo           *float64 `json:"kwh_to"`
	EnergyLkrPerKwh float64  `json:"energy_lkr_per_kwh"`
	FixedLkr        float64  `json:"fixed_lkr"`
}

type Service interface {
	UploadBlocks(ctx context.Context, rows []UploadRow) (int, error)
	List(ctx context.Context, scheme string) ([]Tariff, error)
	// ComputeFromStored prices consumption against the stored table for the
	// given scheme.
	ComputeFromStored(ctx context.Context, scheme string, consumptionKwh float64) (*Computation, error)
}

var (
	ErrNegativeConsumption = errors.New("negative_consumption")
	ErrUnknownScheme       = errors.New("unknown_scheme")
	ErrEmptyTariffTable    = errors.New("empty_tariff_table")
	ErrInvalidBlock        = errors.New("invalid_block")
)
