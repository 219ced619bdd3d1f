package mca

import (
	"testing"

	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/format"
	"github.com/arloliu/mca/internal/nbtbuild"
	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/region"
	"github.com/stretchr/testify/require"
)

func TestReadRegion(t *testing.T) {
	want := nbtbuild.SampleChunk(4, 0)
	data := nbtbuild.Region(map[int][]byte{
		4:  nbtbuild.Blob(nbtbuild.Encode(want)),
		70: nbtbuild.Blob(nbtbuild.Encode(nbtbuild.SampleChunk(6, 2))),
	})

	values, err := ReadRegion(data)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, want.Value, values[0])

	chunks, err := ReadChunks(data)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Equal(t, 70, chunks[1].Index)
	require.Equal(t, 6, chunks[1].X)
	require.Equal(t, 2, chunks[1].Z)
}

func TestReadRegion_UnsupportedCompression(t *testing.T) {
	data := nbtbuild.Region(map[int][]byte{
		0: nbtbuild.RawBlob(format.CompressionNone, []byte{0x0A, 0x00, 0x00, 0x00}),
	})

	_, err := ReadRegion(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(region.WithWorkers(4))
	require.NoError(t, err)

	values, err := r.Read(nbtbuild.Region(nil))
	require.NoError(t, err)
	require.Empty(t, values)

	_, err = NewReader(region.WithWorkers(-1))
	require.Error(t, err)
}

func TestDecodeChunk(t *testing.T) {
	root, err := DecodeChunk(nbtbuild.Blob([]byte{0x0A, 0x00, 0x00, 0x00}))

	require.NoError(t, err)
	require.Equal(t, nbt.NamedTag{Name: "", Value: nbt.NewCompound()}, root)
}

func TestDecodeNBT(t *testing.T) {
	root, err := DecodeNBT(nbtbuild.New().Named("level", nbt.IntArray{1, 2, 3}).Bytes())
	require.NoError(t, err)
	require.Equal(t, "level", root.Name)
	require.Equal(t, nbt.IntArray{1, 2, 3}, root.Value)

	_, err = DecodeNBT([]byte{13})
	require.ErrorIs(t, err, errs.ErrUnknownTagKind)
}
