package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
	"github.com/wattwiselabs/wattwise/internal/appliance/repository"
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

func New(p ServiceParam) appliancedomain.Service {
	return &Service{
		log:   p.Log.Named("appliance.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

func (s *Service) BulkUpsert(ctx context.Context, rows []appliancedomain.UploadRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	records := make([]appliancedomain.Appliance, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return 0, appliancedomain.ErrMissingName
		}
		records = append(records, appliancedomain.Appliance{
			ID:       s.genID.Generate(),
			Name:     name,
			TypicalW: row.TypicalW,
			MinW:     row.MinW,
			MaxW:     row.MaxW,
			StandbyW: row.StandbyW,
		})
	}

	if err := s.repo.UpsertBatch(ctx, records); err != nil {
		return 0, err
	}
	s.log.Info("appliance catalog updated", zap.Int("count", len(records)))
	return len(records), nil
}

func (s *Service) List(ctx context.Context) ([]appliancedomain.Appliance, error) {
	return s.repo.List(ctx)
}
