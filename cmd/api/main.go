package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gnapi/internal/config"
	"gnapi/internal/logger"
)

//go:generate swag init -g main.go -d ./,../../internal/http/handler,../../internal/model,../../internal/service -o ../../docs

// @title GN Management API
// @version 1.0
// @description Content and lead-capture API for the GN Management website.
// @BasePath /

var rootCmd = &cobra.Command{
	Use:          "gnapi",
	Short:        "GN Management website API",
	Long:         "Serves team, portfolio and news content and captures contact-form leads.\nRunning without a subcommand is the same as 'gnapi serve'.",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not create the schema on startup")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.AppConfig, *zap.Logger) {
	cfg := config.Load()
	return cfg, logger.NewStdout(cfg.LogLevel, cfg.Location())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
