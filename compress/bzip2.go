//go:build !nobzip2

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/arloliu/zipmethod/format"
	"github.com/arloliu/zipmethod/internal/pool"
)

func init() {
	registerCodec(format.Bzip2, func(cfg *Config) (Codec, error) {
		return NewBzip2Codec(cfg.Level)
	})
}

// Bzip2Codec implements the Bzip2 method.
//
// BZIP2 trades speed for ratio: compression is several times slower than
// Deflate, so it suits archives written once and read rarely.
type Bzip2Codec struct {
	level int
}

var _ Codec = (*Bzip2Codec)(nil)

// NewBzip2Codec creates a Bzip2 codec. Level 0 selects the default (6);
// otherwise level must be between bzip2.BestSpeed (1) and bzip2.BestCompression (9).
func NewBzip2Codec(level int) (*Bzip2Codec, error) {
	if level == 0 {
		level = bzip2.DefaultCompression
	}
	if level < bzip2.BestSpeed || level > bzip2.BestCompression {
		return nil, fmt.Errorf("%w: bzip2 level %d", ErrInvalidLevel, level)
	}

	return &Bzip2Codec{level: level}, nil
}

// Level returns the configured compression level.
func (c *Bzip2Codec) Level() int {
	return c.level
}

// Compress compresses data into a BZIP2 stream.
func (c *Bzip2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	w, err := bzip2.NewWriter(buf, &bzip2.WriterConfig{Level: c.level})
	if err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}

	return buf.Clone(), nil
}

// Decompress decompresses a BZIP2 stream.
func (c *Bzip2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}
	defer r.Close()

	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}

	return buf.Clone(), nil
}
