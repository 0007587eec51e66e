// Package compress provides the codecs behind each archive compression method.
//
// The format package only names methods; this package decides whether a
// method can actually be used in the current build and performs the work:
//
//	method := format.FromCode(code)
//	codec, err := compress.GetCodec(method)
//	if err != nil {
//	    // errors.Is(err, compress.ErrUnsupportedMethod): entry cannot be extracted
//	    return err
//	}
//	data, err := codec.Decompress(entryData)
//
// # Supported Methods
//
//   - Stored (0): StoredCodec, pass-through
//   - Deflated (8): DeflateCodec, raw DEFLATE via klauspost/compress/flate
//   - Bzip2 (12): Bzip2Codec, via dsnet/compress/bzip2
//   - Zstd (93): ZstdCodec, via klauspost/compress/zstd, or libzstd through
//     valyala/gozstd when built with -tags gozstd and cgo
//
// The optional codecs follow the same build tags as the format package
// (nodeflate, nobzip2, nozstd), so a method is either named and usable or
// folded into format.Unsupported.
//
// # Configuration
//
// GetCodec returns shared codecs with default settings. CreateCodec builds a
// new codec configured through options:
//
//	codec, err := compress.CreateCodec(format.Deflated, compress.WithLevel(9))
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Writers, readers and output buffers
// are pooled internally.
package compress
