package compress

// StoredCodec implements the Stored method: data is kept as-is.
type StoredCodec struct{}

var _ Codec = (*StoredCodec)(nil)

// NewStoredCodec creates a new pass-through codec for the Stored method.
func NewStoredCodec() StoredCodec {
	return StoredCodec{}
}

// Compress returns data unchanged without copying.
//
// The returned slice shares memory with the input.
func (c StoredCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}

// Decompress returns data unchanged without copying.
func (c StoredCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}
