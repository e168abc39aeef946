// Package domain contains the admin aggregation contracts and the fixed
// city taxonomy used for regional roll-ups.
package domain

import (
	"context"
	"time"
)

// Cities is the fixed region taxonomy. Locations outside it roll up into
// RegionOther.
var Cities = []string{
	"Colombo", "Mount Lavinia", "Kesbewa", "Maharagama", "Moratuwa", "Ratnapura",
	"Negombo", "Kandy", "Sri Jayewardenepura Kotte", "Kalmunai", "Trincomalee",
	"Galle", "Jaffna", "Athurugiriya", "Weligama", "Matara", "Kolonnawa",
	"Gampaha", "Puttalam", "Badulla", "Kalutara", "Bentota", "Mannar", "Kurunegala",
}

const RegionOther = "Other"

// Totals is the admin dashboard summary. All sums come from a single
// aggregate query over the forecast collection.
type Totals struct {
	ThisMonthTotalBillLkr float64 `json:"this_month_total_bill_lkr"`
	NextMonthTotalBillLkr float64 `json:"next_month_total_bill_lkr"`
	TotalUsageKwh         float64 `json:"total_usage_kwh"`
	TotalUserCount        int64   `json:"total_user_count"`
}

type TotalsRequest struct {
	From *time.Time
	To   *time.Time
}

// RegionStat summarises one region of the per-city roll-up.
type RegionStat struct {
	UserCount int     `json:"user_count"`
	UsageKwh  float64 `json:"usage_kwh"`
}

type Service interface {
	GetTotals(ctx context.Context, req TotalsRequest) (*Totals, error)
	GetRegionalBreakdown(ctx context.Context) (map[string]RegionStat, error)
}
