package region

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/section"
)

// ErrChunkAbsent is returned by Reader.Chunk for a slot whose location is (0, 0).
var ErrChunkAbsent = errors.New("chunk not present")

// Chunk is one decoded chunk together with its table metadata.
type Chunk struct {
	// Index is the location table slot, 0-1023.
	Index int
	// X and Z are the chunk coordinates within the region, 0-31.
	X, Z int
	// Location is the slot's sector range.
	Location section.Location
	// Timestamp is the last modification time, zero when the region has none.
	Timestamp time.Time
	// Name is the root tag name, usually empty.
	Name string
	// Root is the decoded root value.
	Root nbt.Value
}

// ChunkError wraps a failure with the slot it occurred in.
type ChunkError struct {
	Index int
	X, Z  int
	Err   error
}

var _ error = (*ChunkError)(nil)

func newChunkError(index int, err error) *ChunkError {
	x, z := section.ChunkCoords(index)
	return &ChunkError{Index: index, X: x, Z: z, Err: err}
}

// Error implements the error interface.
func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d (x=%d, z=%d): %v", e.Index, e.X, e.Z, e.Err)
}

// Unwrap returns the underlying error.
func (e *ChunkError) Unwrap() error {
	return e.Err
}
