package usage

import (
	"github.com/wattwiselabs/wattwise/internal/usage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("usage.service",
	fx.Provide(service.New),
)
