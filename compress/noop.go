package compress

// NoOpCodec passes data through unchanged.
//
// It backs FormatNone so that callers can treat plain and compressed
// datasets uniformly through the Codec interface.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is without copying.
//
// The returned slice shares the underlying memory with the input,
// so callers must not modify one while holding the other.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
//
// The returned slice shares the underlying memory with the input,
// so callers must not modify one while holding the other.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
