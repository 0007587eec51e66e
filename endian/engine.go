// Package endian provides the byte order engine for reading and writing
// archive header fields.
//
// ZIP-style archives store every multi-byte integer in little-endian order:
//
//	engine := endian.GetLittleEndianEngine()
//	code := engine.Uint16(header[8:10])
//	header = engine.AppendUint16(header, code)
//
// EndianEngine instances are the stateless byte orders from encoding/binary and
// are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by archive headers.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
