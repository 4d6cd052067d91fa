package series

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantora/trendcast/errs"
)

func TestNew(t *testing.T) {
	t.Run("keeps finite values in order", func(t *testing.T) {
		s := New([]float64{100.5, 101.25, 99.75})
		require.Equal(t, []float64{100.5, 101.25, 99.75}, s.Values)
		require.Empty(t, s.Dates)
	})

	t.Run("drops non-finite values", func(t *testing.T) {
		s := New([]float64{1, math.NaN(), 2, math.Inf(1), 3, math.Inf(-1)})
		require.Equal(t, []float64{1, 2, 3}, s.Values)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Zero(t, New(nil).Len())
	})
}

func TestFromPairs(t *testing.T) {
	t.Run("pairs dates with values", func(t *testing.T) {
		s, err := FromPairs([]string{"2024-01-02", "2024-01-03"}, []float64{100, 101.5})
		require.NoError(t, err)
		require.Equal(t, []string{"2024-01-02", "2024-01-03"}, s.Dates)
		require.Equal(t, []float64{100, 101.5}, s.Values)
	})

	t.Run("drops non-finite pairs together", func(t *testing.T) {
		s, err := FromPairs(
			[]string{"2024-01-02", "2024-01-03", "2024-01-04"},
			[]float64{100, math.NaN(), 102},
		)
		require.NoError(t, err)
		require.Equal(t, []string{"2024-01-02", "2024-01-04"}, s.Dates)
		require.Equal(t, []float64{100, 102}, s.Values)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := FromPairs([]string{"2024-01-02"}, []float64{1, 2})
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})
}

func TestSeriesStats(t *testing.T) {
	s, err := FromPairs(
		[]string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"},
		[]float64{100, 104, 98, 102},
	)
	require.NoError(t, err)

	require.Equal(t, 4, s.Len())
	require.InDelta(t, 102.0, s.Last(), 1e-12)
	require.Equal(t, "2024-01-05", s.LastDate())
	require.InDelta(t, 101.0, s.Mean(), 1e-12)
	require.InDelta(t, 98.0, s.Min(), 1e-12)
	require.InDelta(t, 104.0, s.Max(), 1e-12)
}

func TestSeriesNilSafety(t *testing.T) {
	var s *Series
	require.Zero(t, s.Len())
	require.Zero(t, s.Last())
	require.Empty(t, s.LastDate())
}

func TestSeriesEmptyStats(t *testing.T) {
	s := New(nil)
	require.Zero(t, s.Mean())
	require.Zero(t, s.Min())
	require.Zero(t, s.Max())
	require.Zero(t, s.Last())
}

func TestFingerprint(t *testing.T) {
	a, err := FromPairs([]string{"2024-01-02", "2024-01-03"}, []float64{100, 101})
	require.NoError(t, err)
	a.Name = "acme"

	b, err := FromPairs([]string{"2024-01-02", "2024-01-03"}, []float64{100, 101})
	require.NoError(t, err)
	b.Name = "acme"

	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Name = "globex"
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b.Name = "acme"
	b.Values[1] = 101.01
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestWriteCSV(t *testing.T) {
	t.Run("dated series", func(t *testing.T) {
		s, err := FromPairs([]string{"2024-01-02", "2024-01-03"}, []float64{100.5, 101})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, s.WriteCSV(&buf))
		require.Equal(t, "date,close\n2024-01-02,100.5\n2024-01-03,101\n", buf.String())
	})

	t.Run("index-only series", func(t *testing.T) {
		s := New([]float64{1.25, 2.5})

		var buf bytes.Buffer
		require.NoError(t, s.WriteCSV(&buf))
		require.Equal(t, "index,close\n0,1.25\n1,2.5\n", buf.String())
	})

	t.Run("round-trips through ParseCSV", func(t *testing.T) {
		orig, err := FromPairs(
			[]string{"2024-01-02", "2024-01-03", "2024-01-04"},
			[]float64{100.25, 101.5, 99.75},
		)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, orig.WriteCSV(&buf))

		parsed, stats, err := ParseCSV(&buf)
		require.NoError(t, err)
		require.Zero(t, stats.Dropped)
		require.Equal(t, orig.Dates, parsed.Dates)
		require.Equal(t, orig.Values, parsed.Values)
	})
}
