package compress

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quantora/trendcast/errs"
)

// Format identifies a compression container for dataset files.
type Format uint8

const (
	// FormatNone indicates plain, uncompressed data.
	FormatNone Format = iota
	// FormatGzip indicates a gzip stream (RFC 1952).
	FormatGzip
	// FormatZstd indicates a Zstandard frame.
	FormatZstd
	// FormatLZ4 indicates an LZ4 frame.
	FormatLZ4
	// FormatS2 indicates an S2 stream (Snappy-compatible framing).
	FormatS2
	// FormatSnappy indicates a framed Snappy stream.
	FormatSnappy
)

// String returns the lower-case name of the format, suitable for flags,
// file suffixes and log fields.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	case FormatS2:
		return "s2"
	case FormatSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// IsValid reports whether f is one of the defined formats.
func (f Format) IsValid() bool {
	return f <= FormatSnappy
}

// ParseFormat maps a format name back to its Format value.
// Matching is case-insensitive; "gz" and "zst" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "plain":
		return FormatNone, nil
	case "gzip", "gz":
		return FormatGzip, nil
	case "zstd", "zst":
		return FormatZstd, nil
	case "lz4":
		return FormatLZ4, nil
	case "s2":
		return FormatS2, nil
	case "snappy", "sz":
		return FormatSnappy, nil
	default:
		return FormatNone, fmt.Errorf("%w: %q", errs.ErrUnknownFormat, name)
	}
}

// Magic numbers for the supported containers. Every format this package
// produces is a framed stream, so each one is recognizable from its
// first bytes.
var (
	gzipMagic   = []byte{0x1f, 0x8b}
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// Sniff inspects the leading bytes of data and returns the compression
// format it appears to use. Data that matches no known magic number is
// reported as FormatNone.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(data, zstdMagic):
		return FormatZstd
	case bytes.HasPrefix(data, lz4Magic):
		return FormatLZ4
	case bytes.HasPrefix(data, s2Magic):
		return FormatS2
	case bytes.HasPrefix(data, snappyMagic):
		return FormatSnappy
	default:
		return FormatNone
	}
}

// DetectPath guesses the compression format from a file name extension.
// It is a fallback for callers that cannot sniff content, such as when
// choosing an output format for a path the user supplied.
func DetectPath(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return FormatGzip
	case ".zst", ".zstd":
		return FormatZstd
	case ".lz4":
		return FormatLZ4
	case ".s2":
		return FormatS2
	case ".sz", ".snappy":
		return FormatSnappy
	default:
		return FormatNone
	}
}
