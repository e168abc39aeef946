// Package observability provides the shared zap logger.
package observability

import (
	"context"

	"github.com/wattwiselabs/wattwise/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("observability",
	fx.Provide(NewLogger),
)

func NewLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if cfg.Server.Mode == "release" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = log.Sync()
			return nil
		},
	})

	return log, nil
}
