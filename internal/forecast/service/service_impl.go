package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
	"github.com/wattwiselabs/wattwise/internal/forecast/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultModelVersion = "svm-v1"

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

func New(p ServiceParam) forecastdomain.Service {
	return &Service{
		log:   p.Log.Named("forecast.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

// Add stores the prediction payload as received; values are not sanity
// checked. Multiple forecasts per user and month are permitted.
func (s *Service) Add(ctx context.Context, req forecastdomain.CreateRequest) (*forecastdomain.Response, error) {
	if req.User == "" || req.Month == 0 || req.Year == 0 || req.Predictions == nil {
		return nil, forecastdomain.ErrMissingFields
	}

	uid, err := snowflake.ParseString(req.User)
	if err != nil {
		return nil, forecastdomain.ErrInvalidUserID
	}

	version := req.ModelVersion
	if version == "" {
		version = defaultModelVersion
	}

	f := &forecastdomain.Forecast{
		ID:               s.genID.Generate(),
		UserID:           uid,
		Month:            req.Month,
		Year:             req.Year,
		ThisMonthKwh:     req.Predictions.ThisMonth.PredictedKwh,
		ThisMonthBillLkr: req.Predictions.ThisMonth.PredictedBillLkr,
		NextMonthKwh:     req.Predictions.NextMonth.PredictedKwh,
		NextMonthBillLkr: req.Predictions.NextMonth.PredictedBillLkr,
		ModelVersion:     version,
	}
	if err := s.repo.Insert(ctx, f); err != nil {
		return nil, err
	}

	s.log.Info("forecast stored",
		zap.String("user_id", req.User),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year))
	resp := f.ToResponse()
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]forecastdomain.Response, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]forecastdomain.Response, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, forecastdomain.ErrInvalidUserID
	}
	rows, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func toResponses(rows []forecastdomain.Forecast) []forecastdomain.Response {
	out := make([]forecastdomain.Response, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToResponse())
	}
	return out
}
