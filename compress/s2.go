package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec reads and writes S2 streams.
//
// S2 is an extension of Snappy with better throughput and ratio. The
// stream format starts with its own identifier chunk, which is what
// Sniff keys on, and the reader also accepts framed Snappy input.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates an S2 codec using the stream format.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress encodes data as an S2 stream.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(s2.MaxEncodedLen(len(data)))

	w := s2.NewWriter(&buf)
	if err := w.EncodeBuffer(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes an S2 stream back to the original bytes.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := s2.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
