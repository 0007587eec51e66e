//go:build !nodeflate

package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/zipmethod/format"
	"github.com/arloliu/zipmethod/internal/pool"
)

func init() {
	registerCodec(format.Deflated, func(cfg *Config) (Codec, error) {
		if cfg.Level == 0 {
			return NewDeflateCodec(flate.DefaultCompression)
		}

		return NewDeflateCodec(cfg.Level)
	})
}

// flateReaderPool holds readers returned by flate.NewReader. They implement
// flate.Resetter and are reset onto each new input.
var flateReaderPool sync.Pool

// DeflateCodec implements the Deflated method with raw DEFLATE streams, the
// form ZIP entries store (no zlib or gzip framing).
type DeflateCodec struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*DeflateCodec)(nil)

// NewDeflateCodec creates a Deflate codec for level.
//
// Parameters:
//   - level: flate.HuffmanOnly (-2), flate.DefaultCompression (-1), or 0 (no
//     compression) through flate.BestCompression (9)
//
// Returns:
//   - *DeflateCodec: codec instance, safe for concurrent use
//   - error: ErrInvalidLevel if level is out of range
func NewDeflateCodec(level int) (*DeflateCodec, error) {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return nil, fmt.Errorf("%w: deflate level %d", ErrInvalidLevel, level)
	}

	return &DeflateCodec{
		level: level,
		writers: &sync.Pool{
			New: func() any {
				w, err := flate.NewWriter(io.Discard, level)
				if err != nil {
					// level was validated above
					panic(fmt.Sprintf("failed to create deflate writer for pool: %v", err))
				}

				return w
			},
		},
	}, nil
}

// Level returns the configured compression level.
func (c *DeflateCodec) Level() int {
	return c.level
}

// Compress compresses data into a raw DEFLATE stream.
func (c *DeflateCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	w, _ := c.writers.Get().(*flate.Writer)
	defer c.writers.Put(w)
	w.Reset(buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}

	return buf.Clone(), nil
}

// Decompress inflates a raw DEFLATE stream. Truncated streams fail with
// io.ErrUnexpectedEOF.
func (c *DeflateCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := getFlateReader(bytes.NewReader(data))
	defer flateReaderPool.Put(r)

	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}

	return buf.Clone(), nil
}

func getFlateReader(src io.Reader) io.ReadCloser {
	if r, ok := flateReaderPool.Get().(io.ReadCloser); ok {
		if resetter, ok := r.(flate.Resetter); ok && resetter.Reset(src, nil) == nil {
			return r
		}
	}

	return flate.NewReader(src)
}
