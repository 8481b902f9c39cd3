package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gnapi/internal/backend"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema (Postgres) or indexes (MongoDB) and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log := bootstrap()
		defer func() { _ = log.Sync() }()

		be, err := backend.Open(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := be.Close(context.Background()); err != nil {
				log.Warn("db_close_failed", zap.Error(err))
			}
		}()

		return be.Migrate(cmd.Context())
	},
}
