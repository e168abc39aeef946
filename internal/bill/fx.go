package bill

import (
	"github.com/wattwiselabs/wattwise/internal/bill/service"
	"go.uber.org/fx"
)

var Module = fx.Module("bill.service",
	fx.Provide(service.New),
)
