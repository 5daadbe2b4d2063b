package components

import (
	"driveshare/internal/handler"
	"driveshare/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCarHandler,
		api.NewLedgerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
