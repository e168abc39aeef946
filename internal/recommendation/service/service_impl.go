package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
	"github.com/wattwiselabs/wattwise/internal/recommendation/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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

func New(p ServiceParam) recdomain.Service {
	return &Service{
		log:   p.Log.Named("recommendation.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

func (s *Service) Upsert(ctx context.Context, req recdomain.UpsertRequest) (*recdomain.Recommendation, error) {
	if req.User == "" || len(req.HoursPerDay) == 0 {
		return nil, recdomain.ErrMissingFields
	}
	if req.Month < 1 || req.Month > 12 || req.Year == 0 {
		return nil, recdomain.ErrInvalidMonth
	}

	uid, err := snowflake.ParseString(req.User)
	if err != nil {
		return nil, recdomain.ErrInvalidUserID
	}

	rec := &recdomain.Recommendation{
		ID:          s.genID.Generate(),
		UserID:      uid,
		Month:       req.Month,
		Year:        req.Year,
		HoursPerDay: datatypes.NewJSONType(req.HoursPerDay),
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("recommendation upserted",
		zap.String("user_id", req.User),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year))

	// Re-read so callers see the surviving row on conflict updates.
	return s.repo.Find(ctx, uid, req.Month, req.Year)
}

func (s *Service) GetLatestByUser(ctx context.Context, userID string) (*recdomain.Recommendation, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, recdomain.ErrInvalidUserID
	}
	return s.repo.FindLatestByUser(ctx, uid)
}
