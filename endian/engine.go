// Package endian provides byte order utilities for the region and tag-tree decoders.
//
// This package combines encoding/binary's ByteOrder and AppendByteOrder interfaces into
// a single EndianEngine interface, and adds the 24-bit accessors needed by the region
// location table.
//
// # Basic Usage
//
// Region containers and tag trees are big-endian throughout:
//
//	import "github.com/arloliu/mca/endian"
//
//	engine := endian.GetBigEndianEngine()
//	offset := endian.Uint24(engine, entry[0:3])
//	count := entry[3]
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by region files and tag trees.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsBigEndian reports whether engine orders bytes most significant first.
func IsBigEndian(engine EndianEngine) bool {
	return engine.Uint16([]byte{0x01, 0x00}) == 0x0100
}

// Uint24 decodes a 3-byte unsigned integer from b[0:3] using the engine's byte order.
// It panics if b holds fewer than 3 bytes, like the encoding/binary accessors.
func Uint24(engine EndianEngine, b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	if IsBigEndian(engine) {
		return uint32(b[2]) | uint32(b[1])<<8 | uint32(b[0])<<16
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// PutUint24 encodes the low 24 bits of v into b[0:3] using the engine's byte order.
func PutUint24(engine EndianEngine, b []byte, v uint32) {
	_ = b[2] // bounds check hint to compiler
	if IsBigEndian(engine) {
		b[0] = byte(v >> 16)
		b[1] = byte(v >> 8)
		b[2] = byte(v)

		return
	}

	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}
