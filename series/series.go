package series

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/quantora/trendcast/errs"
	"github.com/quantora/trendcast/internal/hash"
)

// Series is an ordered sequence of price observations.
//
// Values are indexed contiguously from 0; the index is the independent
// variable everywhere downstream. Dates are raw display labels parallel
// to Values and may be empty for index-only series. Order is
// significant.
//
// The constructors guarantee finite values. Code that builds a Series
// literal directly takes on that guarantee itself.
type Series struct {
	// Name identifies the dataset in logs and fingerprints.
	Name string
	// Dates holds raw date labels parallel to Values, possibly empty.
	Dates []string
	// Values holds the observations in index order.
	Values []float64
}

// New creates an index-only series from the given values. Non-finite
// values (NaN, ±Inf) are dropped.
func New(values []float64) *Series {
	s := &Series{Values: make([]float64, 0, len(values))}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.Values = append(s.Values, v)
	}

	return s
}

// FromPairs creates a dated series. Pairs whose value is non-finite are
// dropped together with their date label.
//
// Returns errs.ErrLengthMismatch when the slices differ in length.
func FromPairs(dates []string, values []float64) (*Series, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("%w: %d dates vs %d values", errs.ErrLengthMismatch, len(dates), len(values))
	}

	s := &Series{
		Dates:  make([]string, 0, len(dates)),
		Values: make([]float64, 0, len(values)),
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.Dates = append(s.Dates, dates[i])
		s.Values = append(s.Values, v)
	}

	return s, nil
}

// Len returns the number of observations. A nil series has length 0.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Values)
}

// Last returns the final observed value, or 0 for an empty series.
func (s *Series) Last() float64 {
	if s.Len() == 0 {
		return 0
	}

	return s.Values[len(s.Values)-1]
}

// LastDate returns the final date label, or "" when the series carries
// no dates.
func (s *Series) LastDate() string {
	if s == nil || len(s.Dates) == 0 {
		return ""
	}

	return s.Dates[len(s.Dates)-1]
}

// Mean returns the arithmetic mean of the values, or 0 for an empty
// series.
func (s *Series) Mean() float64 {
	if s.Len() == 0 {
		return 0
	}

	return stat.Mean(s.Values, nil)
}

// Min returns the smallest observed value, or 0 for an empty series.
func (s *Series) Min() float64 {
	if s.Len() == 0 {
		return 0
	}

	return floats.Min(s.Values)
}

// Max returns the largest observed value, or 0 for an empty series.
func (s *Series) Max() float64 {
	if s.Len() == 0 {
		return 0
	}

	return floats.Max(s.Values)
}

// Fingerprint returns a stable xxHash64 digest of the series content.
// Equal name, dates and values always produce the same fingerprint, so
// it can identify a dataset across log lines and responses.
func (s *Series) Fingerprint() uint64 {
	if s == nil {
		return hash.Fingerprint("", nil, nil)
	}

	return hash.Fingerprint(s.Name, s.Dates, s.Values)
}

// WriteCSV writes the series as a two-column CSV table. Dated series get
// a "date,close" header; index-only series fall back to "index,close".
func (s *Series) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	dated := s != nil && len(s.Dates) == s.Len() && s.Len() > 0
	header := "index,close\n"
	if dated {
		header = "date,close\n"
	}
	if _, err := bw.WriteString(header); err != nil {
		return err
	}

	for i := 0; i < s.Len(); i++ {
		if dated {
			if _, err := bw.WriteString(s.Dates[i]); err != nil {
				return err
			}
		} else {
			if _, err := bw.WriteString(strconv.Itoa(i)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte(','); err != nil {
			return err
		}
		if _, err := bw.WriteString(strconv.FormatFloat(s.Values[i], 'f', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
