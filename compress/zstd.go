package compress

// ZstdCodec reads and writes Zstandard frames.
//
// Zstd gives the best compression ratio of the supported formats and
// is the recommended container for archived datasets. The Compress and
// Decompress methods live in zstd_cgo.go and zstd_pure.go; the build
// picks the cgo-backed implementation when cgo is available and a pure
// Go implementation otherwise. Both produce standard Zstd frames and
// can read each other's output.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
