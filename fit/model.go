package fit

import "fmt"

// Model is a fitted line over (index, value) pairs.
//
// A Model is an immutable value. It carries the fitted coefficients and
// the goodness-of-fit diagnostics computed over the fitting sample.
//
// Fields:
//   - Slope: fitted change in value per index step
//   - Intercept: fitted value at index zero
//   - RSquared: coefficient of determination over the fitting sample (0-1)
//   - Correlation: Pearson correlation between index and value
type Model struct {
	// Slope is the fitted change in value per index step.
	Slope float64
	// Intercept is the fitted value at index zero.
	Intercept float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// Correlation is the Pearson correlation coefficient (-1 to 1).
	Correlation float64
}

// Predict returns the fitted value at x.
//
// Predict is pure and side-effect free. It accepts any real x, including
// values beyond the fitting range, which is how future points are
// extrapolated.
func (m Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Formula returns a human-readable representation of the fitted line.
func (m Model) Formula() string {
	return fmt.Sprintf("close = %.4f + %.4f*t", m.Intercept, m.Slope)
}

// String returns a string representation of the model.
func (m Model) String() string {
	return fmt.Sprintf("Model{Slope: %.4f, Intercept: %.4f, R²: %.4f}",
		m.Slope, m.Intercept, m.RSquared)
}
