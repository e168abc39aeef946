package user

import (
	"github.com/wattwiselabs/wattwise/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(service.New),
)
