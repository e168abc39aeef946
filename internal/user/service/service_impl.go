package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/wattwiselabs/wattwise/internal/auth/jwt"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	"github.com/wattwiselabs/wattwise/internal/user/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository
	jwt   *jwt.Service
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	JWT   *jwt.Service
}

func New(p ServiceParam) userdomain.Service {
	return &Service{
		log:   p.Log.Named("user.service"),
		genID: p.GenID,
		repo:  repository.Provide(p.DB),
		jwt:   p.JWT,
	}
}

func (s *Service) Register(ctx context.Context, req userdomain.RegisterRequest) (*userdomain.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, userdomain.ErrMissingFields
	}

	role := req.Role
	if role == "" {
		role = userdomain.RoleUser
	}
	if !role.Valid() {
		return nil, userdomain.ErrInvalidRole
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, userdomain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userdomain.User{
		ID:           s.genID.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))
	return s.authResponse(u)
}

func (s *Service) Login(ctx context.Context, req userdomain.LoginRequest) (*userdomain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, userdomain.ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, userdomain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, userdomain.ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *Service) List(ctx context.Context) ([]userdomain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*userdomain.User, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, userdomain.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, userdomain.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) authResponse(u *userdomain.User) (*userdomain.AuthResponse, error) {
	token, err := s.jwt.GenerateToken(u.ID.String(), string(u.Role))
	if err != nil {
		return nil, err
	}
	return &userdomain.AuthResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Token: token,
	}, nil
}
