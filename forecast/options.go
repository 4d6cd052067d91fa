package forecast

import (
	"github.com/quantora/trendcast/internal/options"
)

// EvalConfig holds evaluation settings.
type EvalConfig struct {
	fullPrecisionMetric bool
}

// defaultEvalConfig returns the default settings (validation metrics
// computed on rounded predictions, matching the display pipeline).
func defaultEvalConfig() EvalConfig {
	return EvalConfig{}
}

// Option is a functional option for Evaluate.
type Option = options.Option[*EvalConfig]

// WithFullPrecisionMetric computes the validation metrics on unrounded
// predictions instead of the rounded values the display pipeline shows.
func WithFullPrecisionMetric() Option {
	return options.NoError(func(cfg *EvalConfig) {
		cfg.fullPrecisionMetric = true
	})
}
