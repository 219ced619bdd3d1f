package format

type CompressionType uint8

// Compression method codes stored in the fifth byte of every chunk blob.
const (
	CompressionGZip   CompressionType = 0x01 // CompressionGZip represents RFC 1952 gzip compression.
	CompressionZlib   CompressionType = 0x02 // CompressionZlib represents RFC 1950 zlib (deflate) compression.
	CompressionNone   CompressionType = 0x03 // CompressionNone represents an uncompressed payload.
	CompressionLZ4    CompressionType = 0x04 // CompressionLZ4 represents LZ4 block compression.
	CompressionCustom CompressionType = 0x7F // CompressionCustom represents a producer-defined algorithm.
)

// Region container layout.
const (
	SectorSize         = 4096                           // SectorSize is the allocation granularity of chunk blobs.
	LocationEntries    = 1024                           // LocationEntries is the number of slots in the location table.
	LocationSize       = 4                              // LocationSize is the width of one location entry.
	LocationTableSize  = LocationEntries * LocationSize // LocationTableSize is the size of the first header sector.
	TimestampTableSize = LocationEntries * 4            // TimestampTableSize is the size of the second header sector.
	RegionWidth        = 32                             // RegionWidth is the number of chunk columns along each axis.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionGZip:
		return "GZip"
	case CompressionZlib:
		return "Zlib"
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}
