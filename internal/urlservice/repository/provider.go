package repository

import (
	"database/sql"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shortlink/internal/conf"
	"shortlink/internal/database"
	"shortlink/internal/urlservice/repository/cache"
	"shortlink/internal/urlservice/repository/postgres"
	"shortlink/internal/urlservice/repository/sqlite"
	"shortlink/internal/urlservice/usecase"
)

// ProviderSet is URL repository providers.
var ProviderSet = wire.NewSet(NewURLRepository)

// NewURLRepository picks the backend for the configured driver and layers
// the Redis cache on top when a client is available.
func NewURLRepository(c *conf.Data, db *sql.DB, rdb *redis.Client, logger *zap.Logger) usecase.URLRepository {
	var repo usecase.URLRepository
	if c.Database.Driver == database.DriverPostgres {
		repo = postgres.NewURLRepository(db)
	} else {
		repo = sqlite.NewURLRepository(db)
	}

	if rdb == nil {
		return repo
	}
	ttl := conf.Default().Data.Redis.CacheTTL.Std()
	if c.Redis != nil && c.Redis.CacheTTL > 0 {
		ttl = c.Redis.CacheTTL.Std()
	}
	return cache.NewCachedURLRepository(repo, rdb, ttl, logger.Named("link-cache"))
}
