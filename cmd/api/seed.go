package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gnapi/internal/backend"
	"gnapi/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace team, projects and news with curated content",
	Long: `Replace team, projects and news with curated content.

The content shipped with the binary is used unless --file points to a YAML
file with the same layout. Leads are never touched.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML content file (default: embedded content)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log := bootstrap()
	defer func() { _ = log.Sync() }()

	content, err := loadSeedContent(seedFile)
	if err != nil {
		return err
	}

	be, err := backend.Open(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := be.Close(context.Background()); err != nil {
			log.Warn("db_close_failed", zap.Error(err))
		}
	}()

	if err := be.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	stats, err := seed.NewSeeder(be.Team, be.Projects, be.News, log).Run(cmd.Context(), content)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects, %d team members, %d news articles\n", stats.Projects, stats.Team, stats.News)
	return nil
}

func loadSeedContent(path string) (*seed.Content, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
