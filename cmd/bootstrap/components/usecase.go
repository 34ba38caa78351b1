package components

import (
	"sejour/internal/domain/reservation"
	"sejour/internal/pkg/clock"
	"sejour/internal/pkg/config"
	"sejour/internal/usecase/commands"
	"sejour/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(booking config.BookingConfig) reservation.PriceCalculator {
		return reservation.NewDailyRatePriceCalculator(booking.GuestSurcharge, booking.IncludedGuests)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewPaymentUseCase,
		commands.NewReviewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewPropertyQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		queries.NewTokenValidator,
	),
)
