package trendcast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantora/trendcast/series"
)

// TestFitWrapper verifies the facade delegates to the fit package.
func TestFitWrapper(t *testing.T) {
	model, err := Fit([]float64{0, 1, 2, 3}, []float64{10, 12, 14, 16})

	require.NoError(t, err)
	require.InDelta(t, 2.0, model.Slope, 1e-9)
	require.InDelta(t, 10.0, model.Intercept, 1e-9)
	require.InDelta(t, 11.0, model.Predict(0.5), 1e-9)
}

// TestGenerateForecastPipeline runs the full pipeline on a synthetic
// dataset: generate, forecast, sanity-check the projection.
func TestGenerateForecastPipeline(t *testing.T) {
	sample, err := GenerateSample(
		series.WithDays(250),
		series.WithSeed(7),
		series.WithDrift(0.2),
	)
	require.NoError(t, err)
	require.Equal(t, 250, sample.Len())

	result, err := Forecast(sample, 30)
	require.NoError(t, err)

	require.Len(t, result.InSample, 250)
	require.Len(t, result.Future, 30)
	require.Equal(t, 200, result.SplitIndex)

	// Positive drift should yield an upward trend.
	require.Positive(t, result.Model.Slope)

	// The walk is noisy but the validation error should stay within
	// the same order of magnitude as the daily moves.
	rmse, defined := result.RMSE.Value()
	require.True(t, defined)
	require.Less(t, rmse, sample.Max()-sample.Min())

	// Future indices continue where the observations end.
	require.Equal(t, 250, result.Future[0].Index)
	require.Equal(t, 279, result.Future[29].Index)
}

// TestParseCSVForecastRoundTrip feeds exported CSV back through the
// parser and forecasts it.
func TestParseCSVForecastRoundTrip(t *testing.T) {
	sample, err := GenerateSample(series.WithDays(60), series.WithSeed(11))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, sample.WriteCSV(&sb))

	parsed, stats, err := ParseCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, 60, stats.Rows)
	require.Equal(t, 0, stats.Dropped)
	require.Equal(t, sample.Values, parsed.Values)

	original, err := Forecast(sample, 10)
	require.NoError(t, err)
	reparsed, err := Forecast(parsed, 10)
	require.NoError(t, err)

	require.InDelta(t, original.Model.Slope, reparsed.Model.Slope, 1e-9)
	for i := range original.Future {
		require.InDelta(t, original.Future[i].Value, reparsed.Future[i].Value, 1e-9)
	}
}

// TestDatasetID verifies the hash wrapper is deterministic and
// name-sensitive.
func TestDatasetID(t *testing.T) {
	id1 := DatasetID("sp500.daily")
	id2 := DatasetID("sp500.daily")
	id3 := DatasetID("nasdaq.daily")

	require.Equal(t, id1, id2)
	require.NotEqual(t, id1, id3)
	require.NotZero(t, id1)
}
