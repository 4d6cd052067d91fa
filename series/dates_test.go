package series

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		label string
		ok    bool
	}{
		{"2024-01-02", true},
		{"2024/01/02", true},
		{"01/15/2024", true},
		{"15-Jan-2024", true},
		{"2024-01-02T15:04:05", true},
		{"yesterday", false},
		{"", false},
	}
	for _, tt := range tests {
		_, ok := ParseDate(tt.label)
		require.Equal(t, tt.ok, ok, "label %q", tt.label)
	}
}

func TestFutureDates(t *testing.T) {
	t.Run("steps one day at a time", func(t *testing.T) {
		got := FutureDates("2024-01-05", 3)
		require.Equal(t, []string{"2024-01-06", "2024-01-07", "2024-01-08"}, got)
	})

	t.Run("rolls over month boundaries", func(t *testing.T) {
		got := FutureDates("2024-01-31", 2)
		require.Equal(t, []string{"2024-02-01", "2024-02-02"}, got)
	})

	t.Run("handles leap years", func(t *testing.T) {
		got := FutureDates("2024-02-28", 2)
		require.Equal(t, []string{"2024-02-29", "2024-03-01"}, got)
	})

	t.Run("keeps the input layout", func(t *testing.T) {
		got := FutureDates("2024/01/31", 1)
		require.Equal(t, []string{"2024/02/01"}, got)
	})

	t.Run("falls back to ordinals", func(t *testing.T) {
		got := FutureDates("n/a", 2)
		require.Equal(t, []string{"t+1", "t+2"}, got)
	})

	t.Run("zero steps", func(t *testing.T) {
		require.Empty(t, FutureDates("2024-01-05", 0))
	})
}

func TestSeriesFutureDates(t *testing.T) {
	t.Run("dated series", func(t *testing.T) {
		s, err := FromPairs([]string{"2024-01-02", "2024-01-03"}, []float64{1, 2})
		require.NoError(t, err)
		require.Equal(t, []string{"2024-01-04", "2024-01-05"}, s.FutureDates(2))
	})

	t.Run("undated series", func(t *testing.T) {
		s := New([]float64{1, 2})
		require.Equal(t, []string{"t+1", "t+2"}, s.FutureDates(2))
	})
}
