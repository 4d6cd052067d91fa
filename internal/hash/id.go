package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint computes a single xxHash64 over a named, labeled sequence
// of float64 samples. The name, labels and raw sample bits are streamed
// into one digest, so equal content produces equal fingerprints across
// processes and runs. The label slice may be shorter than the value
// slice; missing labels contribute nothing.
func Fingerprint(name string, labels []string, values []float64) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)

	var buf [8]byte
	for i, v := range values {
		if i < len(labels) {
			_, _ = d.WriteString(labels[i])
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
