package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	mddomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	"github.com/wattwiselabs/wattwise/internal/monthlydata/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func New(p ServiceParam) mddomain.Service {
	return &Service{
		log:   p.Log.Named("monthlydata.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

func (s *Service) BulkUpsert(ctx context.Context, rows []mddomain.UploadRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	records := make([]mddomain.MonthlyData, 0, len(rows))
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			return 0, mddomain.ErrInvalidMonth
		}
		records = append(records, mddomain.MonthlyData{
			ID:             s.genID.Generate(),
			Month:          row.Month,
			MonthName:      row.MonthName,
			AvgTempC:       row.AvgTempC,
			RainyDays:      row.RainyDays,
			PublicHolidays: row.PublicHolidays,
		})
	}

	if err := s.repo.UpsertBatch(ctx, records); err != nil {
		return 0, err
	}
	s.log.Info("monthly data uploaded", zap.Int("count", len(records)))
	return len(records), nil
}

func (s *Service) List(ctx context.Context) ([]mddomain.MonthlyData, error) {
	return s.repo.List(ctx)
}
