package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// SnappyCodec reads and writes framed Snappy streams.
//
// The framing format (as opposed to raw Snappy blocks) carries the
// stream identifier Sniff needs and allows arbitrarily large inputs.
type SnappyCodec struct{}

var _ Codec = (*SnappyCodec)(nil)

// NewSnappyCodec creates a Snappy codec using the framing format.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Compress encodes data as a framed Snappy stream.
func (c SnappyCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(snappy.MaxEncodedLen(len(data)))

	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("snappy compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("snappy compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes a framed Snappy stream back to the original bytes.
func (c SnappyCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := snappy.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return out, nil
}
