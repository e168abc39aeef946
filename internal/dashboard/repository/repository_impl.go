package repository

import (
	"context"
	"time"

	dashdomain "github.com/wattwiselabs/wattwise/internal/dashboard/domain"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	"gorm.io/gorm"
)

// RegionRow is one group of the forecast-to-location join, keyed by the
// location exactly as the user registered it.
type RegionRow struct {
	Location  string
	UserCount int
	UsageKwh  float64
}

type Repository interface {
	SumForecasts(ctx context.Context, from, to *time.Time) (*dashdomain.Totals, error)
	CountUsersByRole(ctx context.Context, role userdomain.Role) (int64, error)
	GroupForecastsByLocation(ctx context.Context) ([]RegionRow, error)
}

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) Repository {
	return &repo{db: db}
}

// SumForecasts aggregates every forecast row in one query. An empty table
// yields zeros, not NULLs.
func (r *repo) SumForecasts(ctx context.Context, from, to *time.Time) (*dashdomain.Totals, error) {
	var totals dashdomain.Totals
	q := r.db.WithContext(ctx).Table("forecasts").Select(
		`COALESCE(SUM(this_month_bill_lkr), 0) AS this_month_total_bill_lkr,
		 COALESCE(SUM(next_month_bill_lkr), 0) AS next_month_total_bill_lkr,
		 COALESCE(SUM(this_month_kwh), 0) AS total_usage_kwh`,
	)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	if err := q.Scan(&totals).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *repo) CountUsersByRole(ctx context.Context, role userdomain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM users WHERE role = ?`,
		role,
	).Scan(&count).Error
	return count, err
}

// GroupForecastsByLocation joins forecasts to their owner's registered
// location and aggregates per location. Users without an appliance record
// land in the empty-location group. Each user has at most one appliance
// record, so the distinct user counts of separate groups never overlap.
func (r *repo) GroupForecastsByLocation(ctx context.Context) ([]RegionRow, error) {
	var rows []RegionRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(ua.location, '') AS location,
		        COUNT(DISTINCT f.user_id) AS user_count,
		        COALESCE(SUM(f.this_month_kwh), 0) AS usage_kwh
		 FROM forecasts f
		 LEFT JOIN user_appliances ua ON ua.user_id = f.user_id
		 GROUP BY ua.location`,
	).Scan(&rows).Error
	return rows, err
}
