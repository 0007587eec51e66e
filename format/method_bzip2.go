//go:build !nobzip2

package format

// Bzip2 means the entry data is compressed with BZIP2.
const Bzip2 CompressionMethod = 12

func init() {
	registerMethod(Bzip2, "Bzip2")
}
