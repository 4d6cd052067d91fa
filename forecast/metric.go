package forecast

import (
	"encoding/json"
	"strconv"
)

// Metric is an optional validation error value.
//
// A Metric distinguishes "no metric exists" from "the metric is zero":
// an empty validation window yields an undefined Metric, never NaN and
// never 0. The zero value is undefined.
type Metric struct {
	value   float64
	defined bool
}

// DefinedMetric returns a Metric holding v.
func DefinedMetric(v float64) Metric {
	return Metric{value: v, defined: true}
}

// Value returns the metric value and whether it is defined.
func (m Metric) Value() (float64, bool) {
	return m.value, m.defined
}

// Defined reports whether the metric holds a value.
func (m Metric) Defined() bool {
	return m.defined
}

// Or returns the metric value, or fallback when undefined.
func (m Metric) Or(fallback float64) float64 {
	if !m.defined {
		return fallback
	}

	return m.value
}

// String returns the metric value, or "n/a" when undefined.
func (m Metric) String() string {
	if !m.defined {
		return "n/a"
	}

	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

// MarshalJSON encodes an undefined metric as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.defined {
		return []byte("null"), nil
	}

	return json.Marshal(m.value)
}

// UnmarshalJSON decodes null as an undefined metric.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = DefinedMetric(v)

	return nil
}
