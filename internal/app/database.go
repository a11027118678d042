package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/newrelic/go-agent/v3/integrations/nrpq" // Registers "nrpostgres" driver
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/config"
)

// NewDatabase opens the remote PostgreSQL backend. The backend is optional:
// with no host configured the function returns nil and the application runs
// local-only. An unreachable backend also returns nil rather than an error,
// so startup never fails on backend trouble; the readiness probe keeps
// retrying per operation. If nrApp is provided the New Relic instrumented
// driver is used for automatic SQL tracing.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig, nrApp *newrelic.Application) *sql.DB {
	if !cfg.Enabled() {
		zap.S().Infow("no remote backend configured, running local-only")
		return nil
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	driver := "postgres"
	if nrApp != nil {
		driver = "nrpostgres"
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		zap.S().Warnw("remote backend unusable, running local-only", "error", err)
		return nil
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		zap.S().Warnw("remote backend unreachable at startup, will keep probing", "error", err)
	}
	return db
}
