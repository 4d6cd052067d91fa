package forecast

import (
	"fmt"
	"math"

	"github.com/quantora/trendcast/errs"
	"github.com/quantora/trendcast/fit"
	"github.com/quantora/trendcast/internal/options"
	"github.com/quantora/trendcast/series"
)

const (
	// splitRatio is the fraction of observations preceding the held-out
	// validation tail.
	splitRatio = 0.8

	// valueDecimals is the precision predictions are rounded to before
	// they are returned or scored.
	valueDecimals = 2
)

// Point is a predicted value at an observation index.
type Point struct {
	// Index is the zero-based observation index. Indexes at or beyond
	// the series length denote future steps.
	Index int
	// Value is the rounded prediction at Index.
	Value float64
}

// Result represents the outcome of evaluating a series.
//
// InSample and Future are kept as separate ordered sequences so the
// consumer can render the observed range and the projection distinctly.
// They are never interleaved.
type Result struct {
	// Model is the line fitted over the full observed range.
	Model fit.Model
	// InSample holds one rounded prediction per observed index.
	InSample []Point
	// Future holds rounded predictions beyond the last observation.
	Future []Point
	// RMSE is the validation error over the held-out tail, undefined
	// when the tail is empty.
	RMSE Metric
	// MAE is the companion absolute error over the same tail.
	MAE Metric
	// SplitIndex is the first index of the held-out tail.
	SplitIndex int
}

// Evaluate fits a trend line to the series and projects it horizon
// steps beyond the last observation.
//
// The model is fitted over the full observed range. Every prediction is
// rounded to 2 decimals before it is returned, and by default the
// validation metrics compare those rounded predictions against the
// observed tail starting at floor(n*0.8). An empty (or nil) series
// produces a Result with empty sequences and undefined metrics; the
// fitter is never invoked for it.
//
// Parameters:
//   - s: Observed series (nil is treated as empty)
//   - horizon: Number of future steps to project, must not be negative
//   - opts: Optional evaluation settings
//
// Returns:
//   - *Result: Evaluation outcome
//   - error: errs.ErrInvalidHorizon for a negative horizon, or a fit
//     error when the series holds no finite observation
func Evaluate(s *series.Series, horizon int, opts ...Option) (*Result, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidHorizon, horizon)
	}

	cfg := defaultEvalConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := s.Len()
	if n == 0 {
		return &Result{InSample: []Point{}, Future: []Point{}}, nil
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := s.Values

	model, err := fit.Fit(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("fit trend: %w", err)
	}

	inSample := make([]Point, n)
	rounded := make([]float64, n)
	for i := 0; i < n; i++ {
		v := roundTo(model.Predict(float64(i)), valueDecimals)
		inSample[i] = Point{Index: i, Value: v}
		rounded[i] = v
	}

	result := &Result{
		Model:      model,
		InSample:   inSample,
		SplitIndex: splitIndex(n),
	}

	if result.SplitIndex < n {
		predicted := rounded[result.SplitIndex:]
		if cfg.fullPrecisionMetric {
			predicted = make([]float64, n-result.SplitIndex)
			for i := range predicted {
				predicted[i] = model.Predict(float64(result.SplitIndex + i))
			}
		}

		actual := ys[result.SplitIndex:]
		rmse, err := fit.RMSE(actual, predicted)
		if err != nil {
			return nil, err
		}
		mae, err := fit.MAE(actual, predicted)
		if err != nil {
			return nil, err
		}

		result.RMSE = DefinedMetric(rmse)
		result.MAE = DefinedMetric(mae)
	}

	future := make([]Point, 0, horizon)
	last := n - 1
	for step := 1; step <= horizon; step++ {
		idx := last + step
		future = append(future, Point{
			Index: idx,
			Value: roundTo(model.Predict(float64(idx)), valueDecimals),
		})
	}
	result.Future = future

	return result, nil
}

// splitIndex returns the first held-out index for a series of length n.
func splitIndex(n int) int {
	return int(math.Floor(float64(n) * splitRatio))
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(v*pow) / pow
}
