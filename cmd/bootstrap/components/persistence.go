package components

import (
	"levelup-store/internal/infra/cache"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/infra/readstore"
	"levelup-store/internal/infra/uow"
	"levelup-store/internal/pkg/config"
	"levelup-store/internal/usecase"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"
	"levelup-store/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.AuthUserStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewContentReadStore,
			fx.As(new(queries.ContentReadStore)),
		),
		fx.Annotate(
			readstore.NewContentReadStore,
			fx.As(new(commands.ContentReads)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewCartStore,
			fx.As(new(shared.CartStore)),
		),
		fx.Annotate(
			cache.NewRedisCatalogCache,
			fx.As(new(shared.CatalogCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCartStore(client *redis.Client, cfg config.Config) *cache.RedisCartStore {
	return cache.NewRedisCartStore(client, cfg.Redis.CartTTL)
}
