package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/muhammad-hassn/portfolio/config"
	"github.com/muhammad-hassn/portfolio/internal/storage/postgres"
)

type DBOptions struct {
	Config    *config.DatabaseConfig
	ConnectTO time.Duration
}

// OpenDB connects to PostgreSQL and applies the embedded schema.
func OpenDB(ctx context.Context, opt DBOptions) (*sql.DB, error) {
	if opt.Config == nil {
		return nil, fmt.Errorf("database config is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 10 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	db, err := postgres.NewConnection(cctx, opt.Config)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if err := postgres.EnsureSchema(cctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
