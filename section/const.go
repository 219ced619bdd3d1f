package section

import "github.com/arloliu/mca/format"

const (
	// ChunkLengthSize is the width of the big-endian length prefix of a chunk blob.
	ChunkLengthSize = 4
	// ChunkHeaderSize is the length prefix plus the compression method byte.
	ChunkHeaderSize = ChunkLengthSize + 1

	// HeaderSize is the minimum region size: the location table sector.
	HeaderSize = format.LocationTableSize
	// FullHeaderSize covers both the location and the timestamp sectors.
	FullHeaderSize = format.LocationTableSize + format.TimestampTableSize

	// MaxSectorOffset is the largest sector offset a 24-bit field can hold.
	MaxSectorOffset = 1<<24 - 1
)
