// Package compat checks that regions and tag trees written by github.com/Tnze/go-mc
// decode to the same values.
package compat

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/Tnze/go-mc/save/region"
	"github.com/arloliu/mca"
	"github.com/arloliu/mca/compress"
	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/format"
	mcanbt "github.com/arloliu/mca/nbt"
	"github.com/stretchr/testify/require"
)

type section struct {
	Y          int8    `nbt:"Y"`
	BlockLight []int8  `nbt:"BlockLight"`
	Palette    []state `nbt:"palette"`
}

type state struct {
	Name string `nbt:"Name"`
}

type heightmaps struct {
	WorldSurface []int64 `nbt:"WORLD_SURFACE"`
}

type chunk struct {
	DataVersion int32      `nbt:"DataVersion"`
	XPos        int32      `nbt:"xPos"`
	ZPos        int32      `nbt:"zPos"`
	Status      string     `nbt:"Status"`
	LastUpdate  int64      `nbt:"LastUpdate"`
	Scale       float32    `nbt:"Scale"`
	Ratio       float64    `nbt:"Ratio"`
	Light       int16      `nbt:"Light"`
	Biomes      []int32    `nbt:"Biomes"`
	Sections    []section  `nbt:"sections"`
	Heightmaps  heightmaps `nbt:"Heightmaps"`
	Tags        []string   `nbt:"Tags"`
}

func sampleChunk(x, z int32) chunk {
	return chunk{
		DataVersion: 3465,
		XPos:        x,
		ZPos:        z,
		Status:      "minecraft:full",
		LastUpdate:  1 << 40,
		Scale:       0.5,
		Ratio:       -1.25,
		Light:       -300,
		Biomes:      []int32{1, 2, 3},
		Sections: []section{
			{Y: -4, BlockLight: []int8{-1, 0, 1}, Palette: []state{{Name: "minecraft:bedrock"}}},
			{Y: -3, BlockLight: []int8{5}, Palette: []state{{Name: "minecraft:stone"}, {Name: "minecraft:air"}}},
		},
		Heightmaps: heightmaps{WorldSurface: []int64{-1, 1 << 50}},
		Tags:       []string{"a", "ü"},
	}
}

func encodeTree(t *testing.T, v any) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, nbt.NewEncoder(&buf).Encode(v, ""))

	return buf.Bytes()
}

// sectorData prefixes a zlib-compressed tree with its method byte, the form
// region.WriteSector expects.
func sectorData(t *testing.T, tree []byte) []byte {
	t.Helper()

	payload, err := compress.NewZlibCompressor().Compress(tree)
	require.NoError(t, err)

	return append([]byte{byte(format.CompressionZlib)}, payload...)
}

func get(t *testing.T, c *mcanbt.Compound, name string) mcanbt.Value {
	t.Helper()

	v, ok := c.Get(name)
	require.True(t, ok, "missing %q", name)

	return v
}

func requireChunk(t *testing.T, want chunk, v mcanbt.Value) {
	t.Helper()

	root, ok := v.(*mcanbt.Compound)
	require.True(t, ok)
	require.Equal(t, []string{
		"DataVersion", "xPos", "zPos", "Status", "LastUpdate", "Scale", "Ratio",
		"Light", "Biomes", "sections", "Heightmaps", "Tags",
	}, root.Keys())

	require.Equal(t, mcanbt.Int(want.DataVersion), get(t, root, "DataVersion"))
	require.Equal(t, mcanbt.Int(want.XPos), get(t, root, "xPos"))
	require.Equal(t, mcanbt.Int(want.ZPos), get(t, root, "zPos"))
	require.Equal(t, mcanbt.String(want.Status), get(t, root, "Status"))
	require.Equal(t, mcanbt.Long(want.LastUpdate), get(t, root, "LastUpdate"))
	require.Equal(t, mcanbt.Float(want.Scale), get(t, root, "Scale"))
	require.Equal(t, mcanbt.Double(want.Ratio), get(t, root, "Ratio"))
	require.Equal(t, mcanbt.Short(want.Light), get(t, root, "Light"))
	require.Equal(t, mcanbt.IntArray(want.Biomes), get(t, root, "Biomes"))

	sections, ok := get(t, root, "sections").(*mcanbt.List)
	require.True(t, ok)
	require.Equal(t, mcanbt.TagCompound, sections.ElemKind)
	require.Equal(t, len(want.Sections), sections.Len())
	for i, s := range want.Sections {
		got := sections.At(i).(*mcanbt.Compound)
		require.Equal(t, mcanbt.Byte(s.Y), get(t, got, "Y"))
		require.Equal(t, mcanbt.ByteArray(s.BlockLight), get(t, got, "BlockLight"))

		palette := get(t, got, "palette").(*mcanbt.List)
		require.Equal(t, len(s.Palette), palette.Len())
		for j, p := range s.Palette {
			require.Equal(t, mcanbt.String(p.Name), get(t, palette.At(j).(*mcanbt.Compound), "Name"))
		}
	}

	hm := get(t, root, "Heightmaps").(*mcanbt.Compound)
	require.Equal(t, mcanbt.LongArray(want.Heightmaps.WorldSurface), get(t, hm, "WORLD_SURFACE"))

	tags := get(t, root, "Tags").(*mcanbt.List)
	require.Equal(t, mcanbt.TagString, tags.ElemKind)
	require.Equal(t, []mcanbt.Value{mcanbt.String("a"), mcanbt.String("ü")}, tags.Elems)
}

func TestDecodeNBT_GoMCEncoder(t *testing.T) {
	want := sampleChunk(7, -3)

	root, err := mca.DecodeNBT(encodeTree(t, want))
	require.NoError(t, err)
	require.Empty(t, root.Name)
	requireChunk(t, want, root.Value)
}

func TestReadRegion_GoMCRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mca")
	r, err := region.Create(path)
	require.NoError(t, err)

	coords := [][2]int{{0, 0}, {5, 0}, {31, 31}, {2, 1}}
	for _, c := range coords {
		tree := encodeTree(t, sampleChunk(int32(c[0]), int32(c[1])))
		require.NoError(t, r.WriteSector(c[0], c[1], sectorData(t, tree)))
	}
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	chunks, err := mca.ReadChunks(data)
	require.NoError(t, err)
	require.Len(t, chunks, len(coords))

	// Table order: (0,0)=0, (5,0)=5, (2,1)=34, (31,31)=1023.
	wantOrder := [][2]int{{0, 0}, {5, 0}, {2, 1}, {31, 31}}
	for i, c := range chunks {
		require.Equal(t, wantOrder[i][0], c.X)
		require.Equal(t, wantOrder[i][1], c.Z)
		requireChunk(t, sampleChunk(int32(c.X), int32(c.Z)), c.Root)
	}
}

func TestReadRegion_GoMCGzipRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mca")
	r, err := region.Create(path)
	require.NoError(t, err)

	// go-mc stores whatever method byte it is given; gzip (1) is valid for the
	// format but is not accepted here.
	require.NoError(t, r.WriteSector(0, 0, []byte{byte(format.CompressionGZip), 0x1F, 0x8B, 0x08}))
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = mca.ReadRegion(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}
