package components

import (
	"stay-booking/internal/infra/outbox"
	"stay-booking/internal/infra/readstore"
	"stay-booking/internal/infra/repository"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/infra/uow"
	"stay-booking/internal/usecase/queries"
	"stay-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingReadQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingLookup)),
		),
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.PlanLookup)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Quota counters are read outside transactions
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.QuotaQueries)),
		),
		fx.Annotate(
			repository.NewQuotaRepository,
			fx.As(new(queries.QuotaReadStore)),
		),
		// Outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OutboxQueries)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(outbox.Store)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
