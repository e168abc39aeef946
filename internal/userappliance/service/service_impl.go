package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"github.com/wattwiselabs/wattwise/internal/userappliance/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const emptyStateMessage = "No appliances added for this user yet."

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

func New(p ServiceParam) uadomain.Service {
	return &Service{
		log:   p.Log.Named("userappliance.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
	}
}

// Upsert replaces the user's entire appliance list. Location is only updated
// when a non-empty value is supplied.
func (s *Service) Upsert(ctx context.Context, userID string, req uadomain.UpsertRequest) (*uadomain.GetResponse, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, uadomain.ErrInvalidUserID
	}

	appliances := req.Appliances
	if appliances == nil {
		appliances = []uadomain.ApplianceHours{}
	}

	rec, err := s.repo.FindByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &uadomain.Record{
			ID:     s.genID.Generate(),
			UserID: uid,
		}
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		rec.Location = loc
	}
	rec.Appliances = datatypes.NewJSONType(appliances)

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("user appliances saved",
		zap.String("user_id", userID),
		zap.Int("appliances", len(appliances)))
	return recordResponse(rec), nil
}

func (s *Service) Get(ctx context.Context, userID string) (*uadomain.GetResponse, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, uadomain.ErrInvalidUserID
	}

	rec, err := s.repo.FindByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &uadomain.GetResponse{
			UserID:     userID,
			Appliances: []uadomain.ApplianceHours{},
			Message:    emptyStateMessage,
		}, nil
	}
	return recordResponse(rec), nil
}

func (s *Service) Delete(ctx context.Context, userID string) (*uadomain.DeleteResponse, error) {
	uid, err := snowflake.ParseString(userID)
	if err != nil {
		return nil, uadomain.ErrInvalidUserID
	}

	rec, err := s.repo.DeleteByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, uadomain.ErrRecordNotFound
	}

	s.log.Info("user appliances deleted", zap.String("user_id", userID))
	return &uadomain.DeleteResponse{
		Message:    "Appliances deleted successfully",
		UserID:     userID,
		Location:   rec.Location,
		Appliances: rec.Appliances.Data(),
	}, nil
}

func recordResponse(rec *uadomain.Record) *uadomain.GetResponse {
	created := rec.CreatedAt
	updated := rec.UpdatedAt
	return &uadomain.GetResponse{
		UserID:     rec.UserID.String(),
		Location:   rec.Location,
		Appliances: rec.Appliances.Data(),
		CreatedAt:  &created,
		UpdatedAt:  &updated,
	}
}
