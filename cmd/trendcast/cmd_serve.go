package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quantora/trendcast/server"
)

var (
	serveConfigPath string
	serveListen     string
)

// serveCmd implements the 'trendcast serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the forecasting HTTP API",
	Long: `Run the HTTP API that accepts dataset uploads and returns fitted
trends with forecasts. Without a config file the server binds to
localhost with sensible defaults.

Example usage:
  trendcast serve                              # defaults, 127.0.0.1:8080
  trendcast serve --config=server.yaml         # file-based configuration
  trendcast serve --listen=0.0.0.0:9090        # override the bind address`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML config file")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address override")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.DefaultConfig()
	if serveConfigPath != "" {
		loaded, err := server.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if serveListen != "" {
		cfg.Listen = serveListen
	}

	srvLogger := logger
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && !flagVerbose {
		srvLogger = logger.Level(level)
	}

	srv, err := server.New(cfg, srvLogger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-sig:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Std())
		defer cancel()

		return srv.Shutdown(ctx)
	}
}
