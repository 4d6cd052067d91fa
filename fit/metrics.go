package fit

import (
	"fmt"
	"math"

	"github.com/quantora/trendcast/errs"
)

// RMSE calculates the root mean square error between actual and
// predicted values.
//
// Formula: RMSE = √(Σ(actual - predicted)² / n)
//
// The result is symmetric in its arguments, non-negative, and exactly
// zero when both slices are identical. Two empty slices produce 0; the
// convention for treating an empty validation window as "no metric" is
// owned by the caller.
//
// Parameters:
//   - actual: Observed values
//   - predicted: Values predicted by a model, same length as actual
//
// Returns:
//   - float64: RMSE value (lower is better, same units as the inputs)
//   - error: errs.ErrLengthMismatch for unequal lengths
func RMSE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("%w: %d actual vs %d predicted", errs.ErrLengthMismatch, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, nil
	}

	sumSq := 0.0
	for i := range actual {
		diff := actual[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(actual))), nil
}

// MAE calculates the mean absolute error between actual and predicted
// values.
//
// Formula: MAE = Σ|actual - predicted| / n
//
// MAE shares RMSE's contract: symmetric, non-negative, zero on identical
// slices, 0 for two empty slices, errs.ErrLengthMismatch for unequal
// lengths. It is less sensitive to outliers than RMSE and is reported
// alongside it by the display layers.
func MAE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("%w: %d actual vs %d predicted", errs.ErrLengthMismatch, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, nil
	}

	sum := 0.0
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}

	return sum / float64(len(actual)), nil
}
