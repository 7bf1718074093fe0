package main

import (
	"fmt"

	"github.com/jonathan/csb-validator/internal/config"
	"github.com/jonathan/csb-validator/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validation API server",
	Long:  `Start an HTTP server that validates uploaded CSB GeoJSON files on POST /validate.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func serverConfig(changedPort bool, cfg *config.Config) server.Config {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	settings := cfg.Server
	if changedPort {
		settings.Port = servePort
	}
	return server.ConfigFrom(settings)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.New(serverConfig(cmd.Flags().Changed("port"), appConfig))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
