package section

import (
	"testing"

	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/format"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	tests := []struct {
		name string
		data []byte
		want Location
	}{
		{"empty slot", []byte{0, 0, 0, 0}, Location{}},
		{"first data sector", []byte{0, 0, 2, 1}, Location{Offset: 2, Count: 1}},
		{"24-bit offset", []byte{0x01, 0x02, 0x03, 0xFF}, Location{Offset: 0x010203, Count: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocation(tt.data, engine)
			require.NoError(t, err)
			require.Equal(t, tt.want, loc)
		})
	}
}

func TestParseLocation_Short(t *testing.T) {
	_, err := ParseLocation([]byte{0, 0, 2}, endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestLocation_IsEmpty(t *testing.T) {
	require.True(t, Location{}.IsEmpty())
	require.False(t, Location{Offset: 2}.IsEmpty())
	require.False(t, Location{Count: 1}.IsEmpty())
}

func TestLocation_Range(t *testing.T) {
	loc := Location{Offset: 3, Count: 2}

	require.Equal(t, int64(3*format.SectorSize), loc.Start())
	require.Equal(t, int64(5*format.SectorSize), loc.End())
}

func TestLocation_Slice(t *testing.T) {
	region := make([]byte, 4*format.SectorSize)
	region[2*format.SectorSize] = 0xAB

	t.Run("in bounds", func(t *testing.T) {
		blob, err := Location{Offset: 2, Count: 2}.Slice(region)
		require.NoError(t, err)
		require.Len(t, blob, 2*format.SectorSize)
		require.Equal(t, byte(0xAB), blob[0])
	})

	t.Run("exactly at end", func(t *testing.T) {
		blob, err := Location{Offset: 3, Count: 1}.Slice(region)
		require.NoError(t, err)
		require.Len(t, blob, format.SectorSize)
	})

	t.Run("past end", func(t *testing.T) {
		_, err := Location{Offset: 3, Count: 2}.Slice(region)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
		require.ErrorIs(t, err, errs.ErrFormat)
	})

	t.Run("max offset", func(t *testing.T) {
		_, err := Location{Offset: MaxSectorOffset, Count: 255}.Slice(region)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})
}

func TestLocation_PutBytes(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	b := make([]byte, 4)

	Location{Offset: 0x00A0B0, Count: 7}.PutBytes(b, engine)
	require.Equal(t, []byte{0x00, 0xA0, 0xB0, 0x07}, b)

	loc, err := ParseLocation(b, engine)
	require.NoError(t, err)
	require.Equal(t, Location{Offset: 0x00A0B0, Count: 7}, loc)
}
