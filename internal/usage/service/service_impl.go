package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/wattwiselabs/wattwise/internal/clock"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
	"github.com/wattwiselabs/wattwise/internal/usage/repository"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func New(p ServiceParam) usagedomain.Service {
	return &Service{
		log:   p.Log.Named("usage.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.Provide(p.DB),
	}
}

func (s *Service) Log(ctx context.Context, req usagedomain.LogRequest) (*usagedomain.Record, error) {
	if req.User == "" || req.Appliance == "" || req.UsageHours == nil {
		return nil, usagedomain.ErrMissingFields
	}

	uid, err := snowflake.ParseString(req.User)
	if err != nil {
		return nil, usagedomain.ErrInvalidUserID
	}
	aid, err := snowflake.ParseString(req.Appliance)
	if err != nil {
		return nil, usagedomain.ErrMissingFields
	}

	recordedAt := s.clock.Now(ctx)
	if req.Date != nil {
		recordedAt = *req.Date
	}

	rec := &usagedomain.Record{
		ID:          s.genID.Generate(),
		UserID:      uid,
		ApplianceID: aid,
		UsageHours:  *req.UsageHours,
		RecordedAt:  recordedAt,
	}
	if err := s.repo.InsertRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]usagedomain.Record, error) {
	return s.repo.ListRecords(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]usagedomain.Record, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, usagedomain.ErrInvalidUserID
	}
	return s.repo.ListRecordsByUser(ctx, uid)
}

func (s *Service) SubmitSurvey(ctx context.Context, req usagedomain.SurveyRequest) (*usagedomain.Survey, error) {
	if req.User == "" || req.People <= 0 {
		return nil, usagedomain.ErrMissingFields
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, usagedomain.ErrInvalidMonth
	}

	uid, err := snowflake.ParseString(req.User)
	if err != nil {
		return nil, usagedomain.ErrInvalidUserID
	}

	appliances := req.Appliances
	if appliances == nil {
		appliances = []uadomain.ApplianceHours{}
	}

	sv := &usagedomain.Survey{
		ID:          s.genID.Generate(),
		UserID:      uid,
		People:      req.People,
		Month:       req.Month,
		Appliances:  datatypes.NewJSONType(appliances),
		SubmittedAt: s.clock.Now(ctx).Truncate(time.Second),
	}
	if err := s.repo.InsertSurvey(ctx, sv); err != nil {
		return nil, err
	}

	s.log.Info("usage survey submitted",
		zap.String("user_id", req.User),
		zap.Int("month", req.Month))
	return sv, nil
}

func (s *Service) ListSurveysByUser(ctx context.Context, userID string) ([]usagedomain.Survey, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, usagedomain.ErrInvalidUserID
	}
	return s.repo.ListSurveysByUser(ctx, uid)
}
