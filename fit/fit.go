package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/quantora/trendcast/errs"
)

// degenerateEps bounds the normal-equation denominator below which the
// sample is treated as having no x spread at all.
const degenerateEps = 1e-10

// Fit fits a line to the given (x, y) pairs by ordinary least squares.
//
// The slope and intercept solve the closed-form normal equations:
//
//	m = (n*Σxy - Σx*Σy) / (n*Σx² - (Σx)²)
//	b = (Σy - m*Σx) / n
//
// Pairs where either coordinate is NaN or infinite are excluded before
// the sums are taken. A sample with a single usable observation, or one
// whose x values are all identical, fits a horizontal line through the
// mean of the y values instead of dividing by zero.
//
// Parameters:
//   - xs: Independent variable values, typically observation indexes
//   - ys: Dependent variable values, same length as xs
//
// Returns:
//   - Model: Fitted model with coefficients and diagnostics
//   - error: errs.ErrLengthMismatch for unequal lengths,
//     errs.ErrEmptySample when no usable observation remains
func Fit(xs, ys []float64) (Model, error) {
	if len(xs) != len(ys) {
		return Model{}, fmt.Errorf("%w: %d xs vs %d ys", errs.ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Model{}, fmt.Errorf("%w: no observations", errs.ErrEmptySample)
	}

	xs, ys = finitePairs(xs, ys)
	n := len(xs)
	if n == 0 {
		return Model{}, fmt.Errorf("%w: no finite observations", errs.ErrEmptySample)
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		xi := xs[i]
		yi := ys[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	denom := float64(n)*sumX2 - sumX*sumX
	if n == 1 || math.Abs(denom) < degenerateEps {
		return Model{Slope: 0, Intercept: sumY / float64(n)}, nil
	}

	slope := (float64(n)*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / float64(n)

	r2, corr := diagnostics(xs, ys, slope, intercept)

	return Model{
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    r2,
		Correlation: corr,
	}, nil
}

// diagnostics computes R² and the Pearson correlation for a fitted line.
// Samples whose y values have no variance report 0 for both so that a
// flat fit never surfaces NaN.
func diagnostics(xs, ys []float64, slope, intercept float64) (r2, corr float64) {
	if len(xs) < 2 {
		return 0, 0
	}

	meanY := stat.Mean(ys, nil)
	ssTot := 0.0
	for _, y := range ys {
		d := y - meanY
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, 0
	}

	r2 = stat.RSquared(xs, ys, nil, intercept, slope)
	corr = stat.Correlation(xs, ys, nil)

	return r2, corr
}

// finitePairs drops pairs where either coordinate is NaN or infinite.
// The input slices are returned untouched when every pair is finite,
// which is the common case.
func finitePairs(xs, ys []float64) ([]float64, []float64) {
	clean := true
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			clean = false
			break
		}
	}
	if clean {
		return xs, ys
	}

	fx := make([]float64, 0, len(xs))
	fy := make([]float64, 0, len(ys))
	for i := range xs {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			fx = append(fx, xs[i])
			fy = append(fy, ys[i])
		}
	}

	return fx, fy
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
