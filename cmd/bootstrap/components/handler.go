package components

import (
	"sejour/internal/handler"
	"sejour/internal/handler/api"
	"sejour/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		api.NewPropertyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
