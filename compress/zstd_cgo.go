//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// zstdLevel is the compression level passed to libzstd. Level 3 is the
// upstream default and balances ratio against speed.
const zstdLevel = 3

// Compress encodes data as a Zstd frame using libzstd.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes a Zstd frame using libzstd.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
