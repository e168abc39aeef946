package service

import (
	"context"

	dashdomain "github.com/wattwiselabs/wattwise/internal/dashboard/domain"
	"github.com/wattwiselabs/wattwise/internal/dashboard/repository"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	cities map[string]struct{}
}

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

func New(p ServiceParam) dashdomain.Service {
	cities := make(map[string]struct{}, len(dashdomain.Cities))
	for _, c := range dashdomain.Cities {
		cities[c] = struct{}{}
	}
	return &Service{
		log:    p.Log.Named("dashboard.service"),
		repo:   repository.Provide(p.DB),
		cities: cities,
	}
}

func (s *Service) GetTotals(ctx context.Context, req dashdomain.TotalsRequest) (*dashdomain.Totals, error) {
	totals, err := s.repo.SumForecasts(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountUsersByRole(ctx, userdomain.RoleUser)
	if err != nil {
		return nil, err
	}
	totals.TotalUserCount = count
	return totals, nil
}

// GetRegionalBreakdown folds the location groups into the fixed city
// taxonomy; anything not on the list merges into "Other".
func (s *Service) GetRegionalBreakdown(ctx context.Context) (map[string]dashdomain.RegionStat, error) {
	rows, err := s.repo.GroupForecastsByLocation(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]dashdomain.RegionStat, len(rows))
	for _, row := range rows {
		region := row.Location
		if _, ok := s.cities[region]; !ok {
			region = dashdomain.RegionOther
		}
		stat := out[region]
		stat.UserCount += row.UserCount
		stat.UsageKwh += row.UsageKwh
		out[region] = stat
	}
	return out, nil
}
