// Package forecast evaluates a trend line over an observed series and
// projects it beyond the last observation.
//
// Evaluate is the single entry point. It fits a line over the full
// observed range with the fit package, produces rounded in-sample
// predictions for every observed index, scores the fit on a held-out
// tail, and extrapolates the requested number of future steps. The
// in-sample and future sequences are kept separate so a consumer can
// render observed and projected ranges distinctly.
//
//	s := series.New([]float64{100, 102, 104, 106, 108})
//	result, err := forecast.Evaluate(s, 30)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if rmse, ok := result.RMSE.Value(); ok {
//	    fmt.Printf("validation RMSE: %.4f\n", rmse)
//	}
//
// Evaluation is pure and synchronous. Nothing is cached between calls;
// changing the series means calling Evaluate again.
package forecast
