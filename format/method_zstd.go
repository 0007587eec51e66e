//go:build !nozstd

package format

// Zstd means the entry data is compressed with Zstandard.
const Zstd CompressionMethod = 93

func init() {
	registerMethod(Zstd, "Zstd")
}
