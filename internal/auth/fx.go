package auth

import (
	"github.com/wattwiselabs/wattwise/internal/auth/jwt"
	"github.com/wattwiselabs/wattwise/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(provideJWT),
)

func provideJWT(cfg config.Config) (*jwt.Service, error) {
	return jwt.NewService(jwt.Config{
		SecretKey: cfg.Auth.JWTSecret,
		Duration:  cfg.Auth.TokenTTL,
	})
}
