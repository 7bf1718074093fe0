// Package main provides the csb_validator command-line tool and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/csb-validator/internal/config"
	"github.com/jonathan/csb-validator/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// appConfig is loaded before any subcommand runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "csb_validator",
	Short: "Crowdsourced Bathymetry GeoJSON validator",
	Long: "csb_validator checks Crowdsourced Bathymetry (CSB) GeoJSON files for missing, " +
		"out-of-range and malformed fields, and reports every violation per feature.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (default $CSB_CONFIG or ./csb_validator.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	appConfig = cfg

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
