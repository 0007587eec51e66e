//go:build !nozstd && gozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

type zstdState struct{}

func newZstdState(int) *zstdState {
	return &zstdState{}
}

// Compress compresses data into a single Zstandard frame using libzstd.
func (c *ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, c.level), nil
}

// Decompress decompresses Zstandard frames using libzstd.
func (c *ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
