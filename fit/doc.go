// Package fit provides least-squares line fitting over (index, value)
// pairs and the error metrics used to judge the fit.
//
// The fitter solves the closed-form normal equations for a single
// dependent variable, producing a Model with a slope and an intercept.
// A Model is a plain immutable value; Predict is pure and valid for any
// real input, including indexes beyond the observed range.
//
// # Usage
//
// Fit a line and project it forward:
//
//	xs := []float64{0, 1, 2, 3, 4}
//	ys := []float64{100, 102, 104, 106, 108}
//	model, err := fit.Fit(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	next := model.Predict(5) // 110
//
// Judge the fit on a held-out slice:
//
//	rmse, err := fit.RMSE(actual, predicted)
//
// # Degenerate Inputs
//
// A sample with a single observation, or one whose x values are all
// identical, has no unique least-squares line. Fit resolves this case to
// a horizontal line through the mean of the observed values rather than
// dividing by zero. Non-finite observations (NaN, ±Inf) are excluded
// before the sums are taken; a sample with nothing finite left is
// rejected the same way as an empty one.
//
// # Diagnostics
//
// Alongside slope and intercept, a Model carries the coefficient of
// determination and the Pearson correlation of the fitting sample,
// computed with gonum/stat. Both are 0 for degenerate samples.
package fit
