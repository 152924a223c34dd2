package components

import (
	"tickit/internal/handler"
	"tickit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSiteHandler,
		api.NewBookingHandler,
		api.NewPricingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
