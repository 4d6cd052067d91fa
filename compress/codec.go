package compress

import (
	"fmt"

	"github.com/quantora/trendcast/errs"
)

// Compressor compresses a byte slice into a framed stream of its format.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// Empty input yields empty output and no error. The returned slice
	// is newly allocated and owned by the caller; the input slice is
	// not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores the original bytes from a framed stream.
type Decompressor interface {
	// Decompress returns the original form of data.
	//
	// The input must have been produced by the matching Compressor.
	// Empty input yields empty output and no error; corrupt or
	// truncated input returns an error. The returned slice is newly
	// allocated and owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one format.
//
// All implementations in this package are stateless values and safe
// for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// builtinCodecs holds one shared instance per supported format.
var builtinCodecs = map[Format]Codec{
	FormatNone:   NewNoOpCodec(),
	FormatGzip:   NewGzipCodec(),
	FormatZstd:   NewZstdCodec(),
	FormatLZ4:    NewLZ4Codec(),
	FormatS2:     NewS2Codec(),
	FormatSnappy: NewSnappyCodec(),
}

// GetCodec retrieves the built-in Codec for the given format.
//
// Returns:
//   - Codec: Shared codec instance for the format
//   - error: errs.ErrUnknownFormat for formats this package does not support
func GetCodec(format Format) (Codec, error) {
	if codec, ok := builtinCodecs[format]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownFormat, format)
}

// Compress encodes data with the codec registered for format.
func Compress(data []byte, format Format) ([]byte, error) {
	codec, err := GetCodec(format)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress decodes data with the codec registered for format.
func Decompress(data []byte, format Format) ([]byte, error) {
	codec, err := GetCodec(format)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// Stats summarizes the effect of compressing one payload.
//
// Useful for logging how much an exported dataset shrank.
type Stats struct {
	// Format identifies the compression format that was applied.
	Format Format

	// OriginalSize is the payload size in bytes before compression.
	OriginalSize int64

	// CompressedSize is the payload size in bytes after compression.
	CompressedSize int64
}

// Ratio returns compressed size over original size.
//
// Values less than 1.0 indicate the payload shrank; values greater
// than 1.0 indicate overhead. A zero original size reports 0.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// Savings returns the space saved as a percentage of the original size.
// Negative values mean the compressed form is larger than the input.
func (s Stats) Savings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// String formats the stats for log output.
func (s Stats) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (%.1f%% saved)",
		s.Format, s.OriginalSize, s.CompressedSize, s.Savings())
}
