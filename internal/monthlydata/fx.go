package monthlydata

import (
	"github.com/wattwiselabs/wattwise/internal/monthlydata/service"
	"go.uber.org/fx"
)

var Module = fx.Module("monthlydata.service",
	fx.Provide(service.New),
)
