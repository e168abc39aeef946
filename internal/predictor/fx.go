package predictor

import "go.uber.org/fx"

var Module = fx.Module("predictor.client",
	fx.Provide(NewClient),
)
