package tariff

import (
	"github.com/wattwiselabs/wattwise/internal/tariff/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tariff.service",
	fx.Provide(service.New),
)
