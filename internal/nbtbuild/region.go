package nbtbuild

import (
	"github.com/arloliu/mca/compress"
	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/format"
	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/section"
)

// RawBlob builds a chunk blob from a method byte and an already compressed payload.
// The length field is 1+len(payload).
func RawBlob(method format.CompressionType, payload []byte) []byte {
	blob := make([]byte, section.ChunkHeaderSize, section.ChunkHeaderSize+len(payload))
	section.ChunkHeader{
		Length:      uint32(len(payload) + 1),
		Compression: method,
	}.PutBytes(blob, endian.GetBigEndianEngine())

	return append(blob, payload...)
}

// Blob zlib-compresses tree and wraps it in a chunk blob.
func Blob(tree []byte) []byte {
	payload, err := compress.NewZlibCompressor().Compress(tree)
	if err != nil {
		panic(err)
	}

	return RawBlob(format.CompressionZlib, payload)
}

// Region lays out a region image holding blobs keyed by table index.
//
// Blobs are placed in index order starting at sector 2, each padded to whole sectors.
// The timestamp sector is filled with index+1 for every present chunk.
func Region(blobs map[int][]byte) []byte {
	engine := endian.GetBigEndianEngine()
	data := make([]byte, section.FullHeaderSize)

	sector := uint32(2)
	for i := range format.LocationEntries {
		blob, ok := blobs[i]
		if !ok {
			continue
		}

		count := (len(blob) + format.SectorSize - 1) / format.SectorSize
		if count == 0 {
			count = 1
		}

		loc := section.Location{Offset: sector, Count: uint8(count)}
		loc.PutBytes(data[i*format.LocationSize:], engine)
		engine.PutUint32(data[format.LocationTableSize+i*4:], uint32(i+1))

		padded := make([]byte, count*format.SectorSize)
		copy(padded, blob)
		data = append(data, padded...)
		sector += uint32(count)
	}

	return data
}

// SampleChunk returns a small chunk-shaped tree for the given chunk coordinates.
func SampleChunk(x, z int32) nbt.NamedTag {
	sections := nbt.NewList(nbt.TagCompound)
	for y := int8(-4); y < -2; y++ {
		s := nbt.NewCompound()
		s.Set("Y", nbt.Byte(y))
		s.Set("BlockLight", make(nbt.ByteArray, 16))
		sections.Elems = append(sections.Elems, s)
	}

	heightmaps := nbt.NewCompound()
	heightmaps.Set("WORLD_SURFACE", nbt.LongArray{1, 2, 3, -4})

	root := nbt.NewCompound()
	root.Set("DataVersion", nbt.Int(3465))
	root.Set("xPos", nbt.Int(x))
	root.Set("zPos", nbt.Int(z))
	root.Set("yPos", nbt.Int(-4))
	root.Set("Status", nbt.String("minecraft:full"))
	root.Set("LastUpdate", nbt.Long(123456789))
	root.Set("InhabitedTime", nbt.Long(0))
	root.Set("isLightOn", nbt.Byte(1))
	root.Set("sections", sections)
	root.Set("Heightmaps", heightmaps)
	root.Set("block_entities", nbt.NewList(nbt.TagEnd))
	root.Set("PostProcessing", nbt.NewList(nbt.TagList))
	root.Set("structures", nbt.NewCompound())

	return nbt.NamedTag{Name: "", Value: root}
}
