package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
	"github.com/wattwiselabs/wattwise/internal/bill/repository"
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

func New(p ServiceParam) billdomain.Service {
	return &Service{
		log:   p.Log.Named("bill.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

func (s *Service) Add(ctx context.Context, req billdomain.CreateRequest) (*billdomain.Bill, error) {
	if req.User == "" || req.Month == nil || req.Year == nil ||
		req.TotalConsumption == nil || req.TotalAmount == nil {
		return nil, billdomain.ErrMissingFields
	}

	uid, err := snowflake.ParseString(req.User)
	if err != nil {
		return nil, billdomain.ErrInvalidUserID
	}

	b := &billdomain.Bill{
		ID:               s.genID.Generate(),
		UserID:           uid,
		Month:            *req.Month,
		Year:             *req.Year,
		TotalConsumption: *req.TotalConsumption,
		TotalAmount:      *req.TotalAmount,
		TariffRate:       req.TariffRate,
		Paid:             req.Paid,
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("bill created",
		zap.String("user_id", req.User),
		zap.Int("month", b.Month),
		zap.Int("year", b.Year))
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]billdomain.Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]billdomain.Bill, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, billdomain.ErrInvalidUserID
	}
	return s.repo.ListByUser(ctx, uid)
}
