package compress

import (
	"fmt"
	"testing"
)

var benchRowCounts = []int{100, 1000, 10000}

func BenchmarkCompress(b *testing.B) {
	for _, format := range allFormats() {
		for _, rows := range benchRowCounts {
			payload := samplePayload(rows)

			b.Run(fmt.Sprintf("%s/Rows_%d", format, rows), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))

				for i := 0; i < b.N; i++ {
					if _, err := Compress(payload, format); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	for _, format := range allFormats() {
		for _, rows := range benchRowCounts {
			payload := samplePayload(rows)
			compressed, err := Compress(payload, format)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/Rows_%d", format, rows), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))

				for i := 0; i < b.N; i++ {
					if _, err := Decompress(compressed, format); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSniff(b *testing.B) {
	payload := samplePayload(1000)
	samples := make(map[string][]byte, len(allFormats()))
	for _, format := range allFormats() {
		compressed, err := Compress(payload, format)
		if err != nil {
			b.Fatal(err)
		}
		samples[format.String()] = compressed
	}

	for name, data := range samples {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Sniff(data)
			}
		})
	}
}
