// Package compress provides compression codecs for dataset files.
//
// Price history moves around as CSV, and CSV compresses well. This
// package lets every ingest path accept compressed datasets and every
// export path produce them, without the caller caring which container
// was used.
//
// # Formats
//
// Each supported format is a framed container with a magic number, so
// compressed files are self-describing:
//
//   - FormatNone: plain bytes, no container
//   - FormatGzip: gzip stream, the interchange default
//   - FormatZstd: Zstandard frame, best ratio for archives
//   - FormatLZ4: LZ4 frame, fastest decompression
//   - FormatS2: S2 stream, balanced speed and ratio
//   - FormatSnappy: framed Snappy stream
//
// All containers are the standard ones, so files written here open
// with the matching command line tools (gunzip, zstd, lz4, and so on)
// and files produced by those tools decode here.
//
// # Detection
//
// Sniff identifies a format from the leading bytes of a payload:
//
//	format := compress.Sniff(data)
//	plain, err := compress.Decompress(data, format)
//
// DetectPath maps a file extension (.gz, .zst, .lz4, .s2, .sz) to its
// format for callers that only have a name, such as when picking the
// output container for a path the user supplied.
//
// # Codecs
//
// The Codec interface pairs Compress and Decompress for one format.
// GetCodec returns a shared, stateless instance:
//
//	codec, err := compress.GetCodec(compress.FormatZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
//
// The package level Compress and Decompress helpers wrap the lookup
// for one-shot use. All codecs treat empty input as empty output.
//
// # Zstd Backends
//
// The Zstd codec has two implementations selected at build time: a
// cgo binding to libzstd when cgo is available, and a pure Go fallback
// otherwise. Both read and write standard Zstd frames.
package compress
