package compress

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/zipmethod/format"
	"github.com/arloliu/zipmethod/internal/options"
)

var (
	// ErrUnsupportedMethod is returned when no codec is compiled in for a method.
	ErrUnsupportedMethod = errors.New("unsupported compression method")

	// ErrInvalidLevel is returned when a compression level is outside the range
	// accepted by the method's codec.
	ErrInvalidLevel = errors.New("invalid compression level")

	// ErrRoundTripMismatch is returned by Measure when decompressed data differs
	// from the input.
	ErrRoundTripMismatch = errors.New("round trip produced different data")
)

// Compressor compresses entry data for one compression method.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result owned by
	// the caller. Empty input returns nil.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same method.
//
// Decompress returns an error if data is corrupted, truncated or was produced
// by a different method. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Config holds the settings applied by Option values.
type Config struct {
	// Level is the method-specific compression level. Zero selects the codec's default.
	Level int
}

// Option configures a codec created by CreateCodec.
type Option = options.Option[*Config]

// WithLevel sets the compression level.
//
// Accepted ranges are method-specific:
//   - Stored: any value, ignored
//   - Deflated: -2 (Huffman only) to 9
//   - Bzip2: 1 to 9
//   - Zstd: 1 to 22
func WithLevel(level int) Option {
	return options.NoError(func(c *Config) {
		c.Level = level
	})
}

type codecFactory func(cfg *Config) (Codec, error)

var (
	codecFactories = map[format.CompressionMethod]codecFactory{
		format.Stored: func(*Config) (Codec, error) { return NewStoredCodec(), nil },
	}
	builtinCodecs = map[format.CompressionMethod]Codec{
		format.Stored: NewStoredCodec(),
	}
)

// registerCodec binds a method to its codec. It runs from init functions of
// the build-tag-guarded codec files.
func registerCodec(method format.CompressionMethod, factory codecFactory) {
	if _, dup := codecFactories[method]; dup {
		panic(fmt.Sprintf("compress: codec for %v registered twice", method))
	}

	codec, err := factory(&Config{})
	if err != nil {
		panic(fmt.Sprintf("compress: default codec for %v: %v", method, err))
	}

	codecFactories[method] = factory
	builtinCodecs[method] = codec
}

// Supports reports whether this build can compress and decompress method.
func Supports(method format.CompressionMethod) bool {
	_, ok := builtinCodecs[method]
	return ok
}

// GetCodec retrieves the shared built-in Codec for method.
//
// Unsupported methods return an error wrapping ErrUnsupportedMethod that
// names the method, for example "unsupported compression method: Unsupported(99)".
func GetCodec(method format.CompressionMethod) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
}

// CreateCodec creates a new Codec for method configured by opts.
//
// Returns:
//   - Codec: codec instance for the method
//   - error: ErrUnsupportedMethod for methods without a codec, ErrInvalidLevel
//     for an out-of-range level
func CreateCodec(method format.CompressionMethod, opts ...Option) (Codec, error) {
	factory, ok := codecFactories[method]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
	}

	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %v codec: %w", method, err)
	}

	return codec, nil
}

// CompressionStats describes one compress/decompress round trip.
type CompressionStats struct {
	// Method identifies the compression method used
	Method format.CompressionMethod

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data, in nanoseconds
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data, in nanoseconds
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size.
//
// Values less than 1.0 indicate successful compression. Returns 0.0 if the
// original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses and decompresses data with codec and reports the sizes
// and timings. It fails with ErrRoundTripMismatch if the data does not survive
// the round trip.
func Measure(codec Codec, method format.CompressionMethod, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Method:       method,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("%v compress: %w", method, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	decompressed, err := codec.Decompress(compressed)
	if err != nil {
		return stats, fmt.Errorf("%v decompress: %w", method, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	if !bytes.Equal(data, decompressed) {
		return stats, fmt.Errorf("%w: %v", ErrRoundTripMismatch, method)
	}

	return stats, nil
}
