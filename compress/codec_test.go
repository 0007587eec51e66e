package compress

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/arloliu/zipmethod/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs(t *testing.T) map[format.CompressionMethod]Codec {
	t.Helper()

	codecs := make(map[format.CompressionMethod]Codec)
	for _, method := range format.KnownMethods() {
		codec, err := GetCodec(method)
		require.NoError(t, err, "known method %v must have a codec", method)
		codecs[method] = codec
	}

	return codecs
}

func TestGetCodec_KnownMethods(t *testing.T) {
	for _, method := range format.KnownMethods() {
		t.Run(method.String(), func(t *testing.T) {
			require.True(t, Supports(method))

			codec, err := GetCodec(method)
			require.NoError(t, err)
			require.NotNil(t, codec)

			again, err := GetCodec(method)
			require.NoError(t, err)
			require.Equal(t, codec, again, "GetCodec returns the shared instance")
		})
	}
}

func TestCreateCodec_DefaultLevelAllKnownMethods(t *testing.T) {
	data := bytes.Repeat([]byte("default level entry "), 200)

	for _, method := range format.KnownMethods() {
		t.Run(method.String(), func(t *testing.T) {
			for _, opts := range [][]Option{nil, {WithLevel(0)}} {
				codec, err := CreateCodec(method, opts...)
				require.NoError(t, err)

				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			}
		})
	}
}

func TestGetCodec_Stored(t *testing.T) {
	codec, err := GetCodec(format.Stored)
	require.NoError(t, err)
	require.IsType(t, StoredCodec{}, codec)
}

func TestGetCodec_Unsupported(t *testing.T) {
	for _, code := range []uint16{7, 99, 65535} {
		method := format.FromCode(code)
		t.Run(method.String(), func(t *testing.T) {
			require.False(t, Supports(method))

			codec, err := GetCodec(method)
			require.Nil(t, codec)
			require.ErrorIs(t, err, ErrUnsupportedMethod)
			require.Contains(t, err.Error(), fmt.Sprint(code))

			_, err = CreateCodec(method)
			require.ErrorIs(t, err, ErrUnsupportedMethod)
		})
	}
}

func TestCreateCodec_Stored(t *testing.T) {
	codec, err := CreateCodec(format.Stored, WithLevel(42))
	require.NoError(t, err, "Stored ignores the level")
	require.IsType(t, StoredCodec{}, codec)
}

func TestCreateCodec_NilOption(t *testing.T) {
	codec, err := CreateCodec(format.Stored, Option(nil))
	require.NoError(t, err, "nil options are skipped")
	require.NotNil(t, codec)
}

func TestStoredCodec(t *testing.T) {
	codec := NewStoredCodec()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	data := []byte("stored entry")
	compressed, err = codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for method, codec := range getAllCodecs(t) {
		t.Run(method.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "Compressing nil should return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "Decompressing nil should return nil")

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "small_text", data: []byte("Hello, World!")},
		{name: "repeated_pattern", data: bytes.Repeat([]byte("ABCD"), 100)},
		{name: "binary_data", data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{name: "single_byte", data: []byte{0x42}},
		{name: "source_file", data: bytes.Repeat([]byte("func main() {\n\tfmt.Println(\"hello\")\n}\n"), 512)},
		{
			name: "pseudo_random",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					if i%100 < 50 {
						data[i] = byte(i % 256)
					} else {
						data[i] = byte((i*7 + i*i) % 256)
					}
				}

				return data
			}(),
		},
		{name: "highly_compressible", data: make([]byte, 1024*1024)},
	}

	for method, codec := range getAllCodecs(t) {
		t.Run(method.String(), func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					t.Logf("Original: %d bytes, Compressed: %d bytes", len(tc.data), len(compressed))

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed, "Decompressed data must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	for method, codec := range getAllCodecs(t) {
		t.Run(method.String(), func(t *testing.T) {
			if method == format.Stored {
				t.Skip("Stored data is not validated")
			}

			// 0xFF opens a DEFLATE block with the reserved type 3 and matches
			// neither the BZIP2 nor the Zstandard magic.
			_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF})
			require.Error(t, err, "reserved/garbage header")

			valid, err := codec.Compress(bytes.Repeat([]byte("truncate me "), 2048))
			require.NoError(t, err)

			_, err = codec.Decompress(valid[:len(valid)/2])
			require.Error(t, err, "truncated stream")
		})
	}
}

func TestAllCodecs_OutputDoesNotAliasPool(t *testing.T) {
	for method, codec := range getAllCodecs(t) {
		t.Run(method.String(), func(t *testing.T) {
			first := []byte("first payload first payload first payload")
			second := []byte("second payload that is longer than the first one")

			c1, err := codec.Compress(first)
			require.NoError(t, err)
			snapshot := append([]byte(nil), c1...)

			_, err = codec.Compress(second)
			require.NoError(t, err)
			require.Equal(t, snapshot, c1, "a later call must not overwrite earlier output")

			d1, err := codec.Decompress(c1)
			require.NoError(t, err)
			_, err = codec.Decompress(c1)
			require.NoError(t, err)
			require.Equal(t, first, d1)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20

	for method, codec := range getAllCodecs(t) {
		t.Run(method.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, numGoroutines)

			for i := range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()

					data := bytes.Repeat([]byte(fmt.Sprintf("goroutine %d payload ", i)), 64)
					compressed, err := codec.Compress(data)
					if err != nil {
						errs <- err
						return
					}

					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						errs <- err
						return
					}
					if !bytes.Equal(data, decompressed) {
						errs <- fmt.Errorf("goroutine %d: data mismatch", i)
					}
				}()
			}

			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "half size",
			stats:           CompressionStats{OriginalSize: 1000, CompressedSize: 500},
			expectedRatio:   0.5,
			expectedSavings: 50.0,
		},
		{
			name:            "no benefit",
			stats:           CompressionStats{OriginalSize: 1000, CompressedSize: 1000},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "expansion",
			stats:           CompressionStats{OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "zero original",
			stats:           CompressionStats{},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 1e-9)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}

func TestMeasure(t *testing.T) {
	data := bytes.Repeat([]byte("measure me "), 1000)

	for method, codec := range getAllCodecs(t) {
		t.Run(method.String(), func(t *testing.T) {
			stats, err := Measure(codec, method, data)
			require.NoError(t, err)
			require.Equal(t, method, stats.Method)
			require.Equal(t, int64(len(data)), stats.OriginalSize)
			require.Positive(t, stats.CompressedSize)
			require.GreaterOrEqual(t, stats.CompressionTimeNs, int64(0))

			if method != format.Stored {
				require.Less(t, stats.CompressionRatio(), 1.0)
			}
		})
	}
}

type brokenCodec struct {
	compressErr error
	corrupt     bool
}

func (b brokenCodec) Compress(data []byte) ([]byte, error) {
	return data, b.compressErr
}

func (b brokenCodec) Decompress(data []byte) ([]byte, error) {
	if b.corrupt {
		return append([]byte{0}, data...), nil
	}

	return data, nil
}

func TestMeasure_Failures(t *testing.T) {
	method := format.Unsupported(99)

	errBoom := errors.New("boom")
	_, err := Measure(brokenCodec{compressErr: errBoom}, method, []byte("x"))
	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "Unsupported(99)")

	_, err = Measure(brokenCodec{corrupt: true}, method, []byte("x"))
	require.ErrorIs(t, err, ErrRoundTripMismatch)
}

func TestRegisterCodec_Duplicate(t *testing.T) {
	require.Panics(t, func() {
		registerCodec(format.Stored, func(*Config) (Codec, error) { return NewStoredCodec(), nil })
	})
}

func TestRegisterCodec_FailingDefault(t *testing.T) {
	method := format.Unsupported(4321)
	require.Panics(t, func() {
		registerCodec(method, func(*Config) (Codec, error) { return nil, ErrInvalidLevel })
	})
	require.False(t, Supports(method))
}
