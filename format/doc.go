// Package format defines the wire identifiers shared by the zipmethod packages.
//
// The central type is CompressionMethod, the 16-bit "compression method" field of
// a ZIP-style archive entry. Every 16-bit code maps to exactly one
// CompressionMethod and back:
//
//	m := format.FromCode(8)     // format.Deflated
//	code := m.Code()            // 8
//	u := format.FromCode(99)    // format.Unsupported(99)
//	fmt.Println(u)              // Unsupported(99)
//
// # Build Tags
//
// Stored (code 0) is always available. Each optional algorithm lives in its own
// file guarded by a build constraint and registers itself at init time:
//
//	-tags nodeflate   removes Deflated (code 8)
//	-tags nobzip2     removes Bzip2 (code 12)
//	-tags nozstd      removes Zstd (code 93)
//
// A removed algorithm's identifier does not exist in that build, and its code
// decodes to Unsupported like any other unknown code.
//
// # Unknown Codes
//
// An unrecognized code is not an error. It decodes to Unsupported(code), which
// encodes back to the same code, so archive metadata survives a read/write
// cycle untouched.
//
// Unsupported is a constructor, not a separate tag: the value is the code
// itself, so Unsupported(code) for a code claimed by a known method of this
// build equals that method (Unsupported(8) == Deflated). Use IsSupported to
// tell known methods from the catch-all.
//
// Whether a method can actually be decompressed is decided by
// the caller, typically through compress.GetCodec.
package format
