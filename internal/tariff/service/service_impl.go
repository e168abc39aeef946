package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	"github.com/wattwiselabs/wattwise/internal/tariff/repository"
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

func New(p ServiceParam) tariffdomain.Service {
	return &Service{
		log:   p.Log.Named("tariff.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

func (s *Service) UploadBlocks(ctx context.Context, rows []tariffdomain.UploadRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	records := make([]tariffdomain.Tariff, 0, len(rows))
	for _, row := range rows {
		scheme := strings.TrimSpace(row.Scheme)
		if scheme != tariffdomain.SchemeLow && scheme != tariffdomain.SchemeHigh {
			return 0, tariffdomain.ErrUnknownScheme
		}
		if row.Block == "" || row.KwhFrom < 0 || row.EnergyLkrPerKwh < 0 {
			return 0, tariffdomain.ErrInvalidBlock
		}
		records = append(records, tariffdomain.Tariff{
			ID:              s.genID.Generate(),
			Scheme:          scheme,
			Block:           row.Block,
			KwhFrom:         row.KwhFrom,
			KwhTo:           row.KwhTo,
			EnergyLkrPerKwh: row.EnergyLkrPerKwh,
			FixedLkr:        row.FixedLkr,
		})
	}

	if err := s.repo.InsertBatch(ctx, records); err != nil {
		return 0, err
	}
	s.log.Info("tariff blocks uploaded", zap.Int("count", len(records)))
	return len(records), nil
}

func (s *Service) List(ctx context.Context, scheme string) ([]tariffdomain.Tariff, error) {
	if scheme == "" {
		return s.repo.ListAll(ctx)
	}
	if scheme != tariffdomain.SchemeLow && scheme != tariffdomain.SchemeHigh {
		return nil, tariffdomain.ErrUnknownScheme
	}
	return s.repo.ListByScheme(ctx, scheme)
}

func (s *Service) ComputeFromStored(ctx context.Context, scheme string, consumptionKwh float64) (*tariffdomain.Computation, error) {
	if scheme != tariffdomain.SchemeLow && scheme != tariffdomain.SchemeHigh {
		return nil, tariffdomain.ErrUnknownScheme
	}

	rows, err := s.repo.ListByScheme(ctx, scheme)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, tariffdomain.ErrEmptyTariffTable
	}

	blocks := make([]tariffdomain.Block, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, tariffdomain.Block{
			Label:         row.Block,
			KwhFrom:       row.KwhFrom,
			KwhTo:         row.KwhTo,
			RateLkrPerKwh: row.EnergyLkrPerKwh,
		})
	}

	// The fixed charge is scheme-level; every row carries the same value.
	return ComputeBill(consumptionKwh, blocks, rows[0].FixedLkr)
}
