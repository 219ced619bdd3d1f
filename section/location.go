package section

import (
	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/format"
)

// Location is one entry of the region location table.
type Location struct {
	// Offset is the index of the first sector of the chunk blob (24 bits on disk).
	Offset uint32
	// Count is the number of sectors the blob occupies, padding included.
	Count uint8
}

// ParseLocation parses a 4-byte location entry.
//
// Returns:
//   - Location: Parsed entry
//   - error: ErrTruncated if data holds fewer than 4 bytes
func ParseLocation(data []byte, engine endian.EndianEngine) (Location, error) {
	if len(data) < format.LocationSize {
		return Location{}, errs.Errorf(errs.ErrTruncated, 0, "location entry needs %d bytes, have %d", format.LocationSize, len(data))
	}

	return Location{
		Offset: endian.Uint24(engine, data[0:3]),
		Count:  data[3],
	}, nil
}

// IsEmpty reports whether the slot holds no chunk, i.e. the location is (0, 0).
func (l Location) IsEmpty() bool {
	return l.Offset == 0 && l.Count == 0
}

// Start returns the byte offset of the blob within the region.
func (l Location) Start() int64 {
	return int64(l.Offset) * format.SectorSize
}

// End returns the exclusive end offset of the blob's sectors within the region.
func (l Location) End() int64 {
	return l.Start() + int64(l.Count)*format.SectorSize
}

// Slice returns the sectors of region covered by the location.
//
// The returned slice aliases region.
//
// Returns:
//   - []byte: The raw chunk blob including trailing padding
//   - error: ErrOutOfBounds if the range runs past the end of region
func (l Location) Slice(region []byte) ([]byte, error) {
	start, end := l.Start(), l.End()
	if end > int64(len(region)) {
		return nil, errs.Errorf(errs.ErrOutOfBounds, int(start),
			"sectors [%d, %d) need bytes up to %d, region has %d", l.Offset, l.Offset+uint32(l.Count), end, len(region))
	}

	return region[start:end], nil
}

// PutBytes encodes the location into data[0:4].
func (l Location) PutBytes(data []byte, engine endian.EndianEngine) {
	endian.PutUint24(engine, data[0:3], l.Offset)
	data[3] = l.Count
}
