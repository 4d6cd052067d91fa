package fit

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/quantora/trendcast/errs"
)

// TestFitPerfectLine verifies exact coefficient recovery on noiseless data.
func TestFitPerfectLine(t *testing.T) {
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 3*float64(i) + 7
	}

	model, err := Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if math.Abs(model.Slope-3) > 1e-9 {
		t.Errorf("Slope = %v, want 3 within 1e-9", model.Slope)
	}
	if math.Abs(model.Intercept-7) > 1e-9 {
		t.Errorf("Intercept = %v, want 7 within 1e-9", model.Intercept)
	}
	if math.Abs(model.RSquared-1) > 1e-9 {
		t.Errorf("RSquared = %v, want 1 within 1e-9", model.RSquared)
	}
	if math.Abs(model.Correlation-1) > 1e-9 {
		t.Errorf("Correlation = %v, want 1 within 1e-9", model.Correlation)
	}

	predicted := make([]float64, len(xs))
	for i, x := range xs {
		predicted[i] = model.Predict(x)
	}
	rmse, err := RMSE(ys, predicted)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	if rmse > 1e-9 {
		t.Errorf("in-sample RMSE = %v, want ~0", rmse)
	}
}

// TestFitSinglePoint verifies the degenerate single-observation case.
func TestFitSinglePoint(t *testing.T) {
	model, err := Fit([]float64{0}, []float64{5})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.Slope != 0 {
		t.Errorf("Slope = %v, want 0", model.Slope)
	}
	if model.Intercept != 5 {
		t.Errorf("Intercept = %v, want 5", model.Intercept)
	}
	if got := model.Predict(100); got != 5 {
		t.Errorf("Predict(100) = %v, want 5", got)
	}
}

// TestFitConstantX verifies that a sample with no x spread falls back to
// a horizontal line through the mean.
func TestFitConstantX(t *testing.T) {
	xs := []float64{2, 2, 2, 2}
	ys := []float64{1, 2, 3, 4}

	model, err := Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.Slope != 0 {
		t.Errorf("Slope = %v, want 0", model.Slope)
	}
	if math.Abs(model.Intercept-2.5) > 1e-12 {
		t.Errorf("Intercept = %v, want 2.5", model.Intercept)
	}
}

// TestFitConstantY verifies that flat observations fit a flat line and
// that the diagnostics stay finite.
func TestFitConstantY(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{42, 42, 42, 42}

	model, err := Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if math.Abs(model.Slope) > 1e-12 {
		t.Errorf("Slope = %v, want 0", model.Slope)
	}
	if math.Abs(model.Intercept-42) > 1e-12 {
		t.Errorf("Intercept = %v, want 42", model.Intercept)
	}
	if model.RSquared != 0 || model.Correlation != 0 {
		t.Errorf("diagnostics = (%v, %v), want (0, 0) for flat sample", model.RSquared, model.Correlation)
	}
	if math.IsNaN(model.RSquared) || math.IsNaN(model.Correlation) {
		t.Error("diagnostics must never be NaN")
	}
}

// TestFitExcludesNonFinite verifies that NaN and Inf pairs do not poison
// the coefficients.
func TestFitExcludesNonFinite(t *testing.T) {
	xs := []float64{0, 1, math.NaN(), 2, 3, 4, 5}
	ys := []float64{7, 10, 9999, 13, math.Inf(1), 19, 22}

	model, err := Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// Finite pairs are (0,7) (1,10) (2,13) (4,19) (5,22): exactly y = 3x + 7.
	if math.Abs(model.Slope-3) > 1e-9 {
		t.Errorf("Slope = %v, want 3 within 1e-9", model.Slope)
	}
	if math.Abs(model.Intercept-7) > 1e-9 {
		t.Errorf("Intercept = %v, want 7 within 1e-9", model.Intercept)
	}
}

// TestFitContractErrors tests fail-fast behavior for invalid calls.
func TestFitContractErrors(t *testing.T) {
	if _, err := Fit([]float64{1, 2}, []float64{1}); !errors.Is(err, errs.ErrLengthMismatch) {
		t.Errorf("mismatched lengths: got %v, want ErrLengthMismatch", err)
	}

	if _, err := Fit(nil, nil); !errors.Is(err, errs.ErrEmptySample) {
		t.Errorf("empty sample: got %v, want ErrEmptySample", err)
	}

	nan := math.NaN()
	if _, err := Fit([]float64{nan, nan}, []float64{1, 2}); !errors.Is(err, errs.ErrEmptySample) {
		t.Errorf("all non-finite: got %v, want ErrEmptySample", err)
	}
}

// TestFitMatchesReference cross-checks the hand-computed coefficients
// against gonum's implementation on non-trivial data.
func TestFitMatchesReference(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []float64{101.3, 99.8, 104.2, 103.7, 107.9, 106.1, 110.4, 112.0, 111.6, 115.3}

	model, err := Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.Abs(model.Intercept-alpha) > 1e-9 {
		t.Errorf("Intercept = %v, reference = %v", model.Intercept, alpha)
	}
	if math.Abs(model.Slope-beta) > 1e-9 {
		t.Errorf("Slope = %v, reference = %v", model.Slope, beta)
	}
}

// TestModelFormula sanity-checks the display form.
func TestModelFormula(t *testing.T) {
	m := Model{Slope: 2, Intercept: 100}
	want := "close = 100.0000 + 2.0000*t"
	if got := m.Formula(); got != want {
		t.Errorf("Formula() = %q, want %q", got, want)
	}
}
