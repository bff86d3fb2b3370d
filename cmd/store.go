package main

import (
	"context"
	"fmt"

	"github.com/dtroode/userdir/internal/config"
	"github.com/dtroode/userdir/internal/model"
	"github.com/dtroode/userdir/internal/repository/postgres"
	"github.com/dtroode/userdir/internal/repository/sqlite"
)

// openStore connects to the configured store and returns its executor with a close func.
func openStore(ctx context.Context, cfg config.Database) (model.QueryExecutor, func() error, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConection(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(db), db.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.NewConnection(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUserRepository(db.DB), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
