package intern

import (
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func sameBacking(a, b string) bool {
	return unsafe.StringData(a) == unsafe.StringData(b)
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
}

func TestTable_String(t *testing.T) {
	table, err := New(16)
	require.NoError(t, err)

	raw := []byte("DataVersion")
	first := table.String(raw)
	second := table.String([]byte("DataVersion"))

	require.Equal(t, "DataVersion", first)
	require.True(t, sameBacking(first, second), "repeated names should share storage")
	require.Equal(t, 1, table.Len())

	raw[0] = 'X'
	require.Equal(t, "DataVersion", first, "interned string must not alias the input")
}

func TestTable_DistinctNames(t *testing.T) {
	table, err := New(16)
	require.NoError(t, err)

	require.Equal(t, "xPos", table.String([]byte("xPos")))
	require.Equal(t, "zPos", table.String([]byte("zPos")))
	require.Equal(t, 2, table.Len())
}

func TestTable_SkipsEmptyAndLongNames(t *testing.T) {
	table, err := New(16)
	require.NoError(t, err)

	long := strings.Repeat("n", MaxNameLength+1)
	require.Equal(t, "", table.String(nil))
	require.Equal(t, long, table.String([]byte(long)))
	require.Equal(t, 0, table.Len())
}

func TestTable_Eviction(t *testing.T) {
	table, err := New(2)
	require.NoError(t, err)

	table.String([]byte("a"))
	table.String([]byte("b"))
	table.String([]byte("c"))

	require.Equal(t, 2, table.Len())
}

func TestTable_Nil(t *testing.T) {
	var table *Table

	require.Equal(t, "Status", table.String([]byte("Status")))
	require.Equal(t, 0, table.Len())
}

func TestID(t *testing.T) {
	require.Equal(t, ID([]byte("sections")), ID([]byte("sections")))
	require.NotEqual(t, ID([]byte("sections")), ID([]byte("Sections")))
}

func TestTable_Concurrent(t *testing.T) {
	table, err := New(64)
	require.NoError(t, err)

	names := []string{"Level", "Sections", "Palette", "BlockStates", "Y"}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				name := names[i%len(names)]
				if got := table.String([]byte(name)); got != name {
					t.Errorf("got %q, want %q", got, name)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(names), table.Len())
}
