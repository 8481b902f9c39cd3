package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinel is the relation created by the last step. Every step is idempotent, so a run
// that failed part way is repeated in full until the sentinel exists.
const sentinel = "public.idx_leads_created_at"

var steps = []migrationStep{
	{
		Name: "create_table_team_members",
		SQL: `CREATE TABLE IF NOT EXISTS team_members (
  id         TEXT        PRIMARY KEY,
  name       TEXT        NOT NULL,
  role       TEXT        NOT NULL,
  bio        TEXT        NOT NULL DEFAULT '',
  image_url  TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id          TEXT        PRIMARY KEY,
  name        TEXT        NOT NULL,
  address     TEXT        NOT NULL,
  category    TEXT        NOT NULL CHECK (category IN ('Featured', 'Upcoming', 'Under Construction', 'Completed', 'Affordable Housing')),
  units       INTEGER     CHECK (units >= 0),
  square_feet TEXT        NOT NULL DEFAULT '',
  year        TEXT        NOT NULL DEFAULT '',
  status      TEXT        NOT NULL DEFAULT '',
  description TEXT        NOT NULL DEFAULT '',
  image_url   TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_projects_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_projects_category ON projects (category);`,
	},
	{
		Name: "create_table_news_articles",
		SQL: `CREATE TABLE IF NOT EXISTS news_articles (
  id            TEXT        PRIMARY KEY,
  title         TEXT        NOT NULL,
  date          TEXT        NOT NULL,
  short_content TEXT        NOT NULL DEFAULT '',
  content       TEXT        NOT NULL,
  image_url     TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_news_articles_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_news_articles_date ON news_articles (date DESC);`,
	},
	{
		Name: "create_table_leads",
		SQL: `CREATE TABLE IF NOT EXISTS leads (
  id         UUID        PRIMARY KEY,
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  phone      TEXT        NOT NULL DEFAULT '',
  company    TEXT        NOT NULL DEFAULT '',
  interest   TEXT        NOT NULL CHECK (interest IN ('Investor', 'Tenant', 'PR', 'Careers')),
  message    TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_leads_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads (created_at);`,
	},
}

// EnsureMigrated runs every step unless the sentinel relation already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinel)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
