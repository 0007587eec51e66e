package format

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// CompressionMethod identifies the compression algorithm declared by an archive entry.
//
// The underlying integer is the on-disk wire code, so conversions in both
// directions are lossless for all 65536 codes. The zero value is Stored.
type CompressionMethod uint16

// Stored means the entry data is not compressed.
const Stored CompressionMethod = 0

// ErrInvalidMethodName is returned when parsing a name that matches no method.
var ErrInvalidMethodName = errors.New("invalid compression method name")

const unsupportedPrefix = "Unsupported("

// methodInfo describes a known method compiled into this build.
type methodInfo struct {
	method CompressionMethod
	name   string
}

// knownMethods is kept sorted by code, with Stored first.
var knownMethods = []methodInfo{
	{method: Stored, name: "Stored"},
}

// registerMethod adds a known method. It runs from init functions of the
// build-tag-guarded method files.
func registerMethod(method CompressionMethod, name string) {
	for _, info := range knownMethods {
		if info.method == method {
			panic(fmt.Sprintf("format: compression method code %d registered twice (%s, %s)",
				uint16(method), info.name, name))
		}
		if strings.EqualFold(info.name, name) {
			panic(fmt.Sprintf("format: compression method name %q registered twice", name))
		}
	}

	knownMethods = append(knownMethods, methodInfo{method: method, name: name})
	slices.SortFunc(knownMethods, func(a, b methodInfo) int {
		return int(a.method) - int(b.method)
	})
}

func lookup(method CompressionMethod) (methodInfo, bool) {
	for _, info := range knownMethods {
		if info.method == method {
			return info, true
		}
	}

	return methodInfo{}, false
}

// FromCode decodes a wire code into a CompressionMethod.
//
// FromCode is total: codes claimed by a known method of this build yield that
// method, every other code yields Unsupported(code).
func FromCode(code uint16) CompressionMethod {
	return CompressionMethod(code)
}

// Unsupported returns the catch-all method carrying code.
//
// If code belongs to a method known to this build, the result is equal to that
// method, since both occupy the same wire code.
func Unsupported(code uint16) CompressionMethod {
	return CompressionMethod(code)
}

// Code encodes m into its wire code.
func (m CompressionMethod) Code() uint16 {
	return uint16(m)
}

// IsSupported reports whether m is a method compiled into this build.
func (m CompressionMethod) IsSupported() bool {
	_, ok := lookup(m)
	return ok
}

// KnownMethods returns the methods compiled into this build, Stored first and
// the rest in ascending code order.
func KnownMethods() []CompressionMethod {
	methods := make([]CompressionMethod, 0, len(knownMethods))
	for _, info := range knownMethods {
		methods = append(methods, info.method)
	}

	return methods
}

// render is the single text form of a method. String and GoString both use it.
func (m CompressionMethod) render() string {
	if info, ok := lookup(m); ok {
		return info.name
	}

	return unsupportedPrefix + strconv.FormatUint(uint64(m), 10) + ")"
}

// String returns the method name, or Unsupported(code) for unknown codes.
func (m CompressionMethod) String() string {
	return m.render()
}

// GoString returns the same text as String, so %#v and %v agree.
func (m CompressionMethod) GoString() string {
	return m.render()
}

// ParseCompressionMethod parses the text produced by String.
//
// Names are matched case-insensitively. "Unsupported(N)" accepts any N in
// [0, 65535] and returns the method for that code.
func ParseCompressionMethod(s string) (CompressionMethod, error) {
	name := strings.TrimSpace(s)

	for _, info := range knownMethods {
		if strings.EqualFold(info.name, name) {
			return info.method, nil
		}
	}

	if len(name) > len(unsupportedPrefix) &&
		strings.EqualFold(name[:len(unsupportedPrefix)], unsupportedPrefix) &&
		strings.HasSuffix(name, ")") {
		digits := name[len(unsupportedPrefix) : len(name)-1]
		code, err := strconv.ParseUint(digits, 10, 16)
		if err != nil {
			return Stored, fmt.Errorf("%w: %q: %w", ErrInvalidMethodName, s, err)
		}

		return FromCode(uint16(code)), nil
	}

	return Stored, fmt.Errorf("%w: %q", ErrInvalidMethodName, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m CompressionMethod) MarshalText() ([]byte, error) {
	return []byte(m.render()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CompressionMethod) UnmarshalText(text []byte) error {
	method, err := ParseCompressionMethod(string(text))
	if err != nil {
		return err
	}

	*m = method

	return nil
}
