// Package trendcast fits linear trends to price history and projects
// them forward.
//
// The core workflow is: load a CSV price history, fit a least-squares
// line over its full range, check the fit against the most recent
// fifth of the observations, then extrapolate the line over a horizon
// of future periods. Predictions are reported in cents, and the
// validation error (RMSE) comes with them so a projection is never
// shown without a hint of how well the line described recent data.
//
// # Basic Usage
//
// Forecasting a dataset from disk:
//
//	import "github.com/quantora/trendcast"
//
//	ds, stats, err := trendcast.LoadDataset("prices.csv.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d rows (%d dropped)\n", stats.Rows, stats.Dropped)
//
//	result, err := trendcast.Forecast(ds, 30)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Model.Formula())
//	for i, p := range result.Future {
//	    fmt.Printf("t+%d: %.2f\n", i+1, p.Value)
//	}
//
// Fitting raw slices directly:
//
//	xs := []float64{0, 1, 2, 3}
//	ys := []float64{10, 12, 14, 16}
//	model, err := trendcast.Fit(xs, ys)
//	// model.Slope == 2, model.Intercept == 10
//
// # Package Structure
//
// This package provides thin top-level wrappers around the focused
// subpackages, covering the common cases. For fine-grained control,
// use the subpackages directly:
//
//   - fit: the least-squares model and error metrics
//   - forecast: evaluation, validation split and extrapolation
//   - series: dataset container, CSV ingest and sample generation
//   - compress: codecs for compressed dataset files
//   - server: the HTTP API
package trendcast

import (
	"io"

	"github.com/quantora/trendcast/fit"
	"github.com/quantora/trendcast/forecast"
	"github.com/quantora/trendcast/internal/hash"
	"github.com/quantora/trendcast/series"
)

// Version is the library version, also reported by the CLI.
const Version = "0.3.0"

// Fit computes the least-squares line through the given points.
//
// Parameters:
//   - xs: Sample positions (typically 0..n-1 for daily history)
//   - ys: Observed values at those positions
//
// Returns:
//   - fit.Model: Fitted line with diagnostics
//   - error: errs.ErrLengthMismatch or errs.ErrEmptySample on bad input
//
// Example:
//
//	model, err := trendcast.Fit([]float64{0, 1, 2}, []float64{5, 7, 9})
//	if err != nil {
//	    return err
//	}
//	next := model.Predict(3) // 11
func Fit(xs, ys []float64) (fit.Model, error) {
	return fit.Fit(xs, ys)
}

// Forecast fits a trend to the series and extrapolates it over the
// horizon, validating against the held-out tail.
//
// This is the one-call entry point for the full pipeline. See
// forecast.Evaluate for the available options.
func Forecast(s *series.Series, horizon int, opts ...forecast.Option) (*forecast.Result, error) {
	return forecast.Evaluate(s, horizon, opts...)
}

// ParseCSV reads a price history from CSV text.
//
// The reader must supply a header row naming a date column and a
// close (or price) column. Delimiters are sniffed, malformed rows are
// dropped and counted in the returned stats, and rows are sorted by
// date.
func ParseCSV(r io.Reader, opts ...series.ParseOption) (*series.Series, *series.ParseStats, error) {
	return series.ParseCSV(r, opts...)
}

// LoadDataset reads a dataset file from disk, unpacking compressed
// containers (gzip, zstd, lz4, s2, snappy) transparently.
func LoadDataset(path string, opts ...series.ParseOption) (*series.Series, *series.ParseStats, error) {
	return series.Load(path, opts...)
}

// GenerateSample produces a reproducible synthetic price history.
//
// Handy in tests and demos. The same options always yield the same
// dataset.
//
// Example:
//
//	sample, err := trendcast.GenerateSample(
//	    series.WithDays(250),
//	    series.WithSeed(7),
//	)
func GenerateSample(opts ...series.GenOption) (*series.Series, error) {
	return series.Generate(opts...)
}

// DatasetID converts a dataset name to its 64-bit hash identifier.
//
// The hash is deterministic, so the same name always maps to the same
// ID across processes. Use Series.Fingerprint instead when the
// identity should cover the data as well as the name.
func DatasetID(name string) uint64 {
	return hash.ID(name)
}
