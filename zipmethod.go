// Package zipmethod maps the "compression method" field of ZIP-style archive
// entries to Go values and to the codecs that implement them.
//
// The package is split in three layers:
//
//   - format: the CompressionMethod type and its lossless 16-bit wire mapping
//   - compress: codecs for each method compiled into the build
//   - zipmethod (this package): helpers that read and write the 2-byte field
//     inside a little-endian header
//
// # Basic Usage
//
// Reading the method of a local file header (offset 8 from the signature):
//
//	method, err := zipmethod.ReadMethod(header[8:])
//	if err != nil {
//	    return err
//	}
//	if !zipmethod.Decompressible(method) {
//	    return fmt.Errorf("cannot extract entry: %v", method)
//	}
//	codec, _ := compress.GetCodec(method)
//	data, err := codec.Decompress(payload)
//
// Writing a header keeps unknown methods intact:
//
//	header = zipmethod.AppendMethod(header, method) // Unsupported(99) writes 99
//
// # Build Tags
//
// Optional methods are compiled in by default and can be removed with
// -tags nodeflate, nobzip2 or nozstd. See the format package for details.
package zipmethod

import (
	"errors"
	"fmt"

	"github.com/arloliu/zipmethod/compress"
	"github.com/arloliu/zipmethod/endian"
	"github.com/arloliu/zipmethod/format"
)

// MethodFieldSize is the size in bytes of the compression method field.
const MethodFieldSize = 2

// ErrShortBuffer is returned when a buffer is too small to hold the method field.
var ErrShortBuffer = errors.New("buffer too short for compression method field")

var fieldEngine = endian.GetLittleEndianEngine()

// ReadMethod decodes the little-endian method field at the start of b.
//
// Every 16-bit value decodes to a method; codes unknown to this build yield
// format.Unsupported(code). The only failure is a buffer shorter than
// MethodFieldSize.
func ReadMethod(b []byte) (format.CompressionMethod, error) {
	if len(b) < MethodFieldSize {
		return format.Stored, fmt.Errorf("%w: got %d bytes", ErrShortBuffer, len(b))
	}

	return format.FromCode(fieldEngine.Uint16(b)), nil
}

// PutMethod encodes m into the first MethodFieldSize bytes of b.
func PutMethod(b []byte, m format.CompressionMethod) error {
	if len(b) < MethodFieldSize {
		return fmt.Errorf("%w: got %d bytes", ErrShortBuffer, len(b))
	}

	fieldEngine.PutUint16(b, m.Code())

	return nil
}

// AppendMethod appends the little-endian method field for m to dst.
func AppendMethod(dst []byte, m format.CompressionMethod) []byte {
	return fieldEngine.AppendUint16(dst, m.Code())
}

// Decompressible reports whether this build has a codec for m.
func Decompressible(m format.CompressionMethod) bool {
	return compress.Supports(m)
}
