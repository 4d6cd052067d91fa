package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/quantora/trendcast/errs"
)

// TestRMSE tests the RMSE contract on known values.
func TestRMSE(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		want      float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"known residuals", []float64{0, 0}, []float64{3, 4}, math.Sqrt(12.5)},
		{"single", []float64{10}, []float64{8}, 2},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RMSE(tt.actual, tt.predicted)
			if err != nil {
				t.Fatalf("RMSE failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RMSE = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRMSEProperties verifies symmetry and non-negativity.
func TestRMSEProperties(t *testing.T) {
	a := []float64{101.2, 99.7, 105.3, 104.8}
	b := []float64{100.0, 102.0, 104.0, 106.0}

	ab, err := RMSE(a, b)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	ba, err := RMSE(b, a)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}

	if ab != ba {
		t.Errorf("RMSE not symmetric: %v vs %v", ab, ba)
	}
	if ab < 0 {
		t.Errorf("RMSE negative: %v", ab)
	}
}

// TestRMSEMismatch tests fail-fast behavior for unequal lengths.
func TestRMSEMismatch(t *testing.T) {
	if _, err := RMSE([]float64{1}, []float64{1, 2}); !errors.Is(err, errs.ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

// TestMAE tests the MAE contract on known values.
func TestMAE(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		want      float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"known residuals", []float64{0, 0}, []float64{3, 4}, 3.5},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.actual, tt.predicted)
			if err != nil {
				t.Fatalf("MAE failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MAE = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := MAE([]float64{1}, nil); !errors.Is(err, errs.ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

// TestRMSEDominatesMAE checks the quadratic-mean inequality on sample data.
func TestRMSEDominatesMAE(t *testing.T) {
	actual := []float64{100, 102, 105, 103, 108, 111}
	predicted := []float64{101, 101.5, 104, 104.5, 109, 110}

	rmse, err := RMSE(actual, predicted)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	mae, err := MAE(actual, predicted)
	if err != nil {
		t.Fatalf("MAE failed: %v", err)
	}

	if rmse < mae {
		t.Errorf("RMSE %v < MAE %v", rmse, mae)
	}
}
