package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
	),
	fx.Invoke(handler.NewRouter),
)
