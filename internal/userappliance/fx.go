package userappliance

import (
	"github.com/wattwiselabs/wattwise/internal/userappliance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("userappliance.service",
	fx.Provide(service.New),
)
