package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quantora/trendcast"
)

var (
	flagVerbose bool

	// logger is configured in PersistentPreRun and shared by all
	// subcommands. Output goes to stderr so piped data stays clean.
	logger zerolog.Logger
)

// rootCmd is the base command for the trendcast CLI.
var rootCmd = &cobra.Command{
	Use:   "trendcast",
	Short: "Linear trend forecasting for price history",
	Long: `Trendcast fits a least-squares trend line to a CSV price history,
validates it against the most recent fifth of the data and projects
the line over a configurable horizon.

Datasets are CSV files with a date column and a close (or price)
column. Compressed files (gzip, zstd, lz4, s2, snappy) are detected
and unpacked automatically.`,
	Version: trendcast.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}

		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
