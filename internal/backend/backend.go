// Package backend selects and wires the content store named by DB_DRIVER.
package backend

import (
	"context"
	"database/sql"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gnapi/internal/config"
	"gnapi/internal/database"
	"gnapi/internal/database/migration"
	"gnapi/internal/repository"
	"gnapi/internal/repository/mongodb"
	"gnapi/internal/repository/postgres"
)

// Pinger reports store connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Backend bundles the repositories of one store with its lifecycle hooks.
type Backend struct {
	Driver   string
	Team     repository.TeamRepository
	Projects repository.ProjectRepository
	News     repository.NewsRepository
	Leads    repository.LeadRepository
	Pinger   Pinger

	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Open connects to the store selected by cfg.DBDriver.
func Open(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*Backend, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return newPostgres(db, log, cfg.Database.Host), nil
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return newMongo(client, cfg.Mongo.Database, log), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want %q or %q)", cfg.DBDriver, config.DriverPostgres, config.DriverMongo)
	}
}

func newPostgres(db *sql.DB, log *zap.Logger, host string) *Backend {
	return &Backend{
		Driver:   config.DriverPostgres,
		Team:     postgres.NewTeamPostgres(db),
		Projects: postgres.NewProjectPostgres(db),
		News:     postgres.NewNewsPostgres(db),
		Leads:    postgres.NewLeadPostgres(db),
		Pinger:   db,
		migrate: func(ctx context.Context) error {
			return migration.EnsureMigrated(ctx, db, log, host)
		},
		close: func(context.Context) error { return db.Close() },
	}
}

func newMongo(client *mongo.Client, dbName string, log *zap.Logger) *Backend {
	db := client.Database(dbName)
	return &Backend{
		Driver:   config.DriverMongo,
		Team:     mongodb.NewTeamMongo(db),
		Projects: mongodb.NewProjectMongo(db),
		News:     mongodb.NewNewsMongo(db),
		Leads:    mongodb.NewLeadMongo(db),
		Pinger:   database.MongoPinger{Client: client},
		migrate: func(ctx context.Context) error {
			if err := mongodb.EnsureIndexes(ctx, db); err != nil {
				log.Error("db_migration_failed", zap.String("component", "database"), zap.Error(err))
				return err
			}
			log.Info("db_migration_success", zap.String("component", "database"), zap.String("db_name", dbName))
			return nil
		},
		close: client.Disconnect,
	}
}

// Migrate creates the schema (Postgres) or indexes (MongoDB). It is idempotent.
func (b *Backend) Migrate(ctx context.Context) error {
	return b.migrate(ctx)
}

// Close releases the underlying connection pool.
func (b *Backend) Close(ctx context.Context) error {
	return b.close(ctx)
}
