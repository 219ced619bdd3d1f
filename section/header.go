package section

import (
	"time"

	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/format"
)

// Header is the parsed region header: the location table and, when present, the
// timestamp table.
type Header struct {
	Locations  [format.LocationEntries]Location
	Timestamps [format.LocationEntries]uint32
	// HasTimestamps is false when the region was shorter than both header sectors.
	HasTimestamps bool
}

// ParseHeader parses the region header from the start of data.
//
// Only the location table is required. The timestamp table is read when data holds
// at least FullHeaderSize bytes.
//
// Returns:
//   - *Header: Parsed header
//   - error: ErrTruncated if data is shorter than HeaderSize
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, errs.Errorf(errs.ErrTruncated, len(data), "region header needs %d bytes, have %d", HeaderSize, len(data))
	}

	engine := endian.GetBigEndianEngine()
	h := &Header{}

	for i := range h.Locations {
		start := i * format.LocationSize
		loc, err := ParseLocation(data[start:start+format.LocationSize], engine)
		if err != nil {
			return nil, err
		}
		h.Locations[i] = loc
	}

	if len(data) >= FullHeaderSize {
		table := data[format.LocationTableSize:FullHeaderSize]
		for i := range h.Timestamps {
			h.Timestamps[i] = engine.Uint32(table[i*4 : i*4+4])
		}
		h.HasTimestamps = true
	}

	return h, nil
}

// Present returns the number of slots holding a chunk.
func (h *Header) Present() int {
	n := 0
	for _, loc := range h.Locations {
		if !loc.IsEmpty() {
			n++
		}
	}

	return n
}

// Timestamp returns the last-modified time of slot i, or the zero time when the
// region has no timestamp table or the slot's timestamp is zero.
func (h *Header) Timestamp(i int) time.Time {
	if !h.HasTimestamps || h.Timestamps[i] == 0 {
		return time.Time{}
	}

	return time.Unix(int64(h.Timestamps[i]), 0).UTC()
}

// ChunkCoords returns the chunk position within the region for a table slot.
func ChunkCoords(index int) (x, z int) {
	return index % format.RegionWidth, index / format.RegionWidth
}

// ChunkIndex returns the table slot of the chunk at (x, z) within the region.
// Coordinates wrap modulo 32, so absolute chunk coordinates may be passed.
func ChunkIndex(x, z int) int {
	return (x & (format.RegionWidth - 1)) | (z&(format.RegionWidth-1))*format.RegionWidth
}
