//go:build !nozstd

package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zipmethod/format"
)

func TestNewZstdCodec_Levels(t *testing.T) {
	codec, err := NewZstdCodec(0)
	require.NoError(t, err)
	require.Equal(t, zstdDefaultLevel, codec.Level())

	for _, level := range []int{zstdMinLevel, 9, zstdMaxLevel} {
		codec, err := NewZstdCodec(level)
		require.NoError(t, err)
		require.Equal(t, level, codec.Level())
	}

	for _, level := range []int{-1, 23} {
		_, err := NewZstdCodec(level)
		require.ErrorIs(t, err, ErrInvalidLevel, "level %d", level)
	}
}

func TestZstdCodec_FrameMagic(t *testing.T) {
	codec, err := GetCodec(format.Zstd)
	require.NoError(t, err)

	compressed, err := codec.Compress([]byte("zstd frame"))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(compressed, []byte{0x28, 0xB5, 0x2F, 0xFD}))
}

func TestZstdCodec_CrossLevelDecode(t *testing.T) {
	data := bytes.Repeat([]byte("any level decodes with any codec "), 256)

	fast, err := CreateCodec(format.Zstd, WithLevel(1))
	require.NoError(t, err)
	strong, err := CreateCodec(format.Zstd, WithLevel(19))
	require.NoError(t, err)

	compressed, err := strong.Compress(data)
	require.NoError(t, err)

	decompressed, err := fast.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}
