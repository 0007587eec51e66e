//go:build !nodeflate

package format

// Deflated means the entry data is compressed with DEFLATE.
const Deflated CompressionMethod = 8

func init() {
	registerMethod(Deflated, "Deflated")
}
