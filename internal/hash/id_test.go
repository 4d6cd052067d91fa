package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}

	t.Run("distinct inputs", func(t *testing.T) {
		assert.NotEqual(t, ID("acme.daily"), ID("acme.weekly"))
	})
}

func TestFingerprint(t *testing.T) {
	dates := []string{"2024-01-02", "2024-01-03", "2024-01-04"}
	values := []float64{100.0, 101.5, 102.25}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Fingerprint("acme", dates, values), Fingerprint("acme", dates, values))
	})

	t.Run("name sensitive", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint("acme", dates, values), Fingerprint("globex", dates, values))
	})

	t.Run("value sensitive", func(t *testing.T) {
		changed := []float64{100.0, 101.5, 102.26}
		assert.NotEqual(t, Fingerprint("acme", dates, values), Fingerprint("acme", dates, changed))
	})

	t.Run("label sensitive", func(t *testing.T) {
		relabeled := []string{"2024-01-02", "2024-01-03", "2024-01-05"}
		assert.NotEqual(t, Fingerprint("acme", dates, values), Fingerprint("acme", relabeled, values))
	})

	t.Run("order sensitive", func(t *testing.T) {
		reordered := []float64{102.25, 101.5, 100.0}
		assert.NotEqual(t, Fingerprint("acme", dates, values), Fingerprint("acme", dates, reordered))
	})

	t.Run("labels optional", func(t *testing.T) {
		a := Fingerprint("acme", nil, values)
		b := Fingerprint("acme", nil, values)
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, Fingerprint("acme", dates, values))
	})
}

func BenchmarkFingerprint(b *testing.B) {
	dates := make([]string, 365)
	values := make([]float64, 365)
	for i := range values {
		dates[i] = "2024-01-02"
		values[i] = 100 + float64(i)*0.25
	}
	for i := 0; i < b.N; i++ {
		Fingerprint("bench", dates, values)
	}
}
