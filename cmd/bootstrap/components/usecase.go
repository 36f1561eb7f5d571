package components

import (
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/domain/quota"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"
	"stay-booking/internal/usecase/shared"

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
	fx.Annotate(
		booking.NewDefaultNightPricer,
		fx.As(new(booking.NightPricer)),
	),
	booking.NewFactory,
	NewPlanLimits,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuotaUseCase,
		commands.NewAvailabilityUseCase,
		NewListingCommands,
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewQuotaQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPlanLimits(cfg config.Config) quota.PlanLimits {
	return quota.PlanLimits{
		Free: cfg.Quota.FreeLimit,
		Plus: cfg.Quota.PlusLimit,
		Pro:  cfg.Quota.ProLimit,
	}
}

func NewListingCommands(uow shared.UnitOfWork, quotaCmds commands.QuotaCommands, clk clock.Clock, cfg config.Config) commands.ListingCommands {
	return commands.NewListingUseCase(uow, quotaCmds, clk, cfg.Booking.CalendarSeedDays)
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock, cfg config.Config) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, factory, clk, cfg.Booking.ConversationWait)
}
