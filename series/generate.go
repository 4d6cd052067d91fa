package series

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/quantora/trendcast/internal/options"
)

// GenConfig holds synthetic series generation settings.
type GenConfig struct {
	days       int
	start      float64
	drift      float64
	volatility float64
	seed       int64
	startDate  string
	name       string
}

// defaultGenConfig returns the default generation settings: 120 daily
// observations starting at 100.0 with mild upward drift.
func defaultGenConfig() GenConfig {
	return GenConfig{
		days:       120,
		start:      100.0,
		drift:      0.15,
		volatility: 1.5,
		seed:       42,
		startDate:  "2024-01-02",
		name:       "synthetic",
	}
}

// GenOption is a functional option for Generate.
type GenOption = options.Option[*GenConfig]

// WithDays sets how many observations to generate.
func WithDays(n int) GenOption {
	return options.New(func(cfg *GenConfig) error {
		if n <= 0 {
			return errors.New("days must be positive")
		}
		cfg.days = n

		return nil
	})
}

// WithStartValue sets the initial price level.
func WithStartValue(v float64) GenOption {
	return options.NoError(func(cfg *GenConfig) {
		cfg.start = v
	})
}

// WithDrift sets the deterministic daily increment.
func WithDrift(d float64) GenOption {
	return options.NoError(func(cfg *GenConfig) {
		cfg.drift = d
	})
}

// WithVolatility sets the random walk jitter as a percentage of the
// current level.
func WithVolatility(pct float64) GenOption {
	return options.New(func(cfg *GenConfig) error {
		if pct < 0 {
			return errors.New("volatility must not be negative")
		}
		cfg.volatility = pct

		return nil
	})
}

// WithSeed sets the random seed. Equal seeds reproduce equal series.
func WithSeed(seed int64) GenOption {
	return options.NoError(func(cfg *GenConfig) {
		cfg.seed = seed
	})
}

// WithStartDate sets the first date label.
func WithStartDate(date string) GenOption {
	return options.New(func(cfg *GenConfig) error {
		if _, ok := ParseDate(date); !ok {
			return fmt.Errorf("unparseable start date %q", date)
		}
		cfg.startDate = date

		return nil
	})
}

// WithName sets the dataset name of the generated series.
func WithName(name string) GenOption {
	return options.NoError(func(cfg *GenConfig) {
		cfg.name = name
	})
}

// Generate produces a reproducible synthetic daily price series.
//
// Values follow a random walk: each day the level moves by the fixed
// drift plus a uniform jitter of up to ±volatility percent of the
// current level, floored at 1 so prices stay positive. Recorded values
// are rounded to cents while the walk itself keeps full precision. The
// same seed always produces the same series. Dates step one calendar
// day at a time from the start date in ISO form.
func Generate(opts ...GenOption) (*Series, error) {
	cfg := defaultGenConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	day, ok := ParseDate(cfg.startDate)
	if !ok {
		return nil, fmt.Errorf("unparseable start date %q", cfg.startDate)
	}

	rng := rand.New(rand.NewSource(cfg.seed))

	dates := make([]string, cfg.days)
	values := make([]float64, cfg.days)
	current := cfg.start
	jitterPercent := cfg.volatility / 100.0

	for i := 0; i < cfg.days; i++ {
		jitterFactor := (rng.Float64()*2.0 - 1.0) * jitterPercent
		current += cfg.drift + current*jitterFactor
		if current < 1 {
			current = 1
		}

		dates[i] = day.Format("2006-01-02")
		values[i] = math.Round(current*100) / 100
		day = day.AddDate(0, 0, 1)
	}

	return &Series{Name: cfg.name, Dates: dates, Values: values}, nil
}
