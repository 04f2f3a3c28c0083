package repository

import (
	"database/sql"

	"github.com/google/wire"

	"shortlink/internal/analytics/repository/postgres"
	"shortlink/internal/analytics/repository/sqlite"
	"shortlink/internal/analytics/usecase"
	"shortlink/internal/conf"
	"shortlink/internal/database"
)

var ProviderSet = wire.NewSet(NewClickRepository)

// NewClickRepository returns the click store for the configured driver.
func NewClickRepository(c *conf.Data, db *sql.DB) usecase.ClickRepository {
	if c.Database.Driver == database.DriverPostgres {
		return postgres.NewClickRepository(db)
	}
	return sqlite.NewClickRepository(db)
}
