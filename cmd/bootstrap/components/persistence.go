package components

import (
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/queries"

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
		// RoomType: provided concretely so the cache module can wrap it
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomTypeReadQueries)),
		),
		readstore.NewRoomTypeReadStore,
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Block
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BlockReadQueries)),
		),
		fx.Annotate(
			readstore.NewBlockReadStore,
			fx.As(new(queries.BlockReadStore)),
		),
		// Occupancy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OccupancyReadQueries)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
	),
)

// repositories are built per transaction inside the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
