package components

import (
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	payment.NewUUIDReferenceGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewListingUseCase,
		commands.NewBookingUseCase,
		commands.NewReviewUseCase,
		commands.NewBookingPaymentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewPaymentQueries,
	),
)
