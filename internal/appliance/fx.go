package appliance

import (
	"github.com/wattwiselabs/wattwise/internal/appliance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("appliance.service",
	fx.Provide(service.New),
)
