package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"biztime/internal/config"
	"biztime/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "biztime",
	Short: "BizTime - companies and invoices REST API",
	Long: `BizTime serves a JSON API over companies and the invoices billed to them,
backed by PostgreSQL.

Configuration is read from config.yaml (or the file named by --config or
BIZTIME_CONFIG), then overridden by BIZTIME_* environment variables. A .env
file in the working directory is loaded first.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the process logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(os.Stderr, level, cfg.Log.Format)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}
