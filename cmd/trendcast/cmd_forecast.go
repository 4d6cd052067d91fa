package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quantora/trendcast/errs"
	"github.com/quantora/trendcast/forecast"
	"github.com/quantora/trendcast/series"
)

// Horizon bounds accepted on the command line, matching the API defaults.
const (
	horizonMin = 1
	horizonMax = 180
)

var (
	forecastInput         string
	forecastHorizon       int
	forecastFormat        string
	forecastFullPrecision bool
)

// forecastCmd implements the 'trendcast forecast' command.
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Fit a price history and project it forward",
	Long: `Fit a least-squares trend line to a CSV price history and project
it over the requested horizon. The most recent fifth of the data is
held out to report a validation RMSE.

Example usage:
  trendcast forecast -i prices.csv                 # 30 day projection
  trendcast forecast -i prices.csv.gz -n 90        # compressed input
  cat prices.csv | trendcast forecast -n 7         # read from stdin
  trendcast forecast -i prices.csv --format=json   # JSON output`,
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)

	forecastCmd.Flags().StringVarP(&forecastInput, "input", "i", "-", "Dataset file, or - for stdin")
	forecastCmd.Flags().IntVarP(&forecastHorizon, "horizon", "n", 30, "Days to project forward")
	forecastCmd.Flags().StringVar(&forecastFormat, "format", "table", "Output format: table, json, csv")
	forecastCmd.Flags().BoolVar(&forecastFullPrecision, "full-precision", false,
		"Compute the validation metric on unrounded predictions")
}

func runForecast(cmd *cobra.Command, args []string) error {
	if forecastHorizon < horizonMin || forecastHorizon > horizonMax {
		return fmt.Errorf("%w: %d is outside [%d, %d]",
			errs.ErrInvalidHorizon, forecastHorizon, horizonMin, horizonMax)
	}

	ds, stats, err := loadDataset(forecastInput)
	if err != nil {
		return err
	}

	if stats.Dropped > 0 {
		logger.Warn().
			Str("dataset", ds.Name).
			Int("rows", stats.Rows).
			Int("dropped", stats.Dropped).
			Msg("some rows were discarded during ingest")
	}
	logger.Debug().
		Str("dataset", ds.Name).
		Int("n", ds.Len()).
		Int("horizon", forecastHorizon).
		Msg("dataset loaded")

	var opts []forecast.Option
	if forecastFullPrecision {
		opts = append(opts, forecast.WithFullPrecisionMetric())
	}

	result, err := forecast.Evaluate(ds, forecastHorizon, opts...)
	if err != nil {
		return err
	}

	switch strings.ToLower(forecastFormat) {
	case "json":
		return printForecastJSON(ds, result)
	case "csv":
		return printForecastCSV(ds, result)
	case "table":
		return printForecastTable(ds, result)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or csv)", forecastFormat)
	}
}

// loadDataset reads a dataset from a file path or stdin.
func loadDataset(input string) (*series.Series, *series.ParseStats, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return series.DecodeCSV("stdin", data)
	}

	return series.Load(input)
}

// forecastJSON is the CLI's JSON output shape.
type forecastJSON struct {
	Dataset    string          `json:"dataset"`
	N          int             `json:"n"`
	SplitIndex int             `json:"split_index"`
	Slope      float64         `json:"slope"`
	Intercept  float64         `json:"intercept"`
	RSquared   float64         `json:"r_squared"`
	Formula    string          `json:"formula"`
	RMSE       forecast.Metric `json:"rmse"`
	MAE        forecast.Metric `json:"mae"`
	Forecast   []forecastRow   `json:"forecast"`
}

type forecastRow struct {
	Date      string  `json:"date"`
	Predicted float64 `json:"predicted"`
}

func forecastRows(ds *series.Series, result *forecast.Result) []forecastRow {
	dates := ds.FutureDates(len(result.Future))
	rows := make([]forecastRow, len(result.Future))
	for i, p := range result.Future {
		rows[i] = forecastRow{Date: dates[i], Predicted: p.Value}
	}

	return rows
}

func printForecastJSON(ds *series.Series, result *forecast.Result) error {
	out := forecastJSON{
		Dataset:    ds.Name,
		N:          ds.Len(),
		SplitIndex: result.SplitIndex,
		Slope:      result.Model.Slope,
		Intercept:  result.Model.Intercept,
		RSquared:   result.Model.RSquared,
		Formula:    result.Model.Formula(),
		RMSE:       result.RMSE,
		MAE:        result.MAE,
		Forecast:   forecastRows(ds, result),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(out)
}

func printForecastCSV(ds *series.Series, result *forecast.Result) error {
	fmt.Println("date,predicted")
	for _, row := range forecastRows(ds, result) {
		fmt.Printf("%s,%.2f\n", row.Date, row.Predicted)
	}

	return nil
}

func printForecastTable(ds *series.Series, result *forecast.Result) error {
	fmt.Printf("Dataset: %s (%d observations)\n", ds.Name, ds.Len())
	fmt.Printf("Trend:   %s\n", result.Model.Formula())
	fmt.Printf("Fit:     R² %.4f, correlation %.4f\n", result.Model.RSquared, result.Model.Correlation)
	fmt.Printf("Validation (last %d points): RMSE %s, MAE %s\n\n",
		ds.Len()-result.SplitIndex, result.RMSE, result.MAE)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tActual\tForecast")
	fmt.Fprintln(w, "----\t------\t--------")

	// Validation tail: observed values against the fitted line.
	for _, p := range result.InSample[result.SplitIndex:] {
		date := fmt.Sprintf("t=%d", p.Index)
		if len(ds.Dates) == ds.Len() {
			date = ds.Dates[p.Index]
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", date, ds.Values[p.Index], p.Value)
	}

	// Future rows have no observed value yet.
	for _, row := range forecastRows(ds, result) {
		fmt.Fprintf(w, "%s\t-\t%.2f\n", row.Date, row.Predicted)
	}

	return w.Flush()
}
