// Package mca decodes region container files and the binary tag trees stored in their
// chunks.
//
// A region file holds up to 1024 chunks of a 32x32 chunk area. Each chunk is a
// zlib-compressed tag tree: a recursively nested structure of integers, floats, strings,
// arrays, lists and compounds.
//
// # Basic Usage
//
// Decoding every chunk of a region file:
//
//	import "github.com/arloliu/mca"
//
//	data, _ := os.ReadFile("r.0.0.mca")
//	chunks, err := mca.ReadChunks(data)
//	if err != nil {
//	    return err
//	}
//	for _, chunk := range chunks {
//	    level := chunk.Root.(*nbt.Compound)
//	    status, _ := level.Get("Status")
//	    fmt.Printf("chunk (%d, %d): %v\n", chunk.X, chunk.Z, status)
//	}
//
// Decoding a single chunk blob or a raw tag tree:
//
//	root, err := mca.DecodeChunk(blobBytes)
//	root, err = mca.DecodeNBT(treeBytes)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the region, blob and nbt
// packages. For worker pools, resource limits and name interning, use those packages
// directly.
//
// # Errors
//
// Every malformed-input failure matches errs.ErrFormat and one of the kind sentinels of
// the errs package. Decoding is fail-fast: one corrupt chunk fails the whole region.
package mca

import (
	"github.com/arloliu/mca/blob"
	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/region"
)

var defaultReader, _ = region.NewReader()

// NewReader creates a region reader.
//
// Example:
//
//	r, err := mca.NewReader(region.WithWorkers(runtime.NumCPU()))
//	if err != nil {
//	    return err
//	}
//	values, err := r.Read(data)
//
// Parameters:
//   - opts: Optional reader configuration
//
// Returns:
//   - *region.Reader: Reader ready for concurrent use
//   - error: Invalid option value
func NewReader(opts ...region.ReaderOption) (*region.Reader, error) {
	return region.NewReader(opts...)
}

// ReadRegion decodes every present chunk of a region and returns their root values in
// location table order.
//
// Returns:
//   - []nbt.Value: One root value per non-empty slot
//   - error: The first failure in table order
func ReadRegion(data []byte) ([]nbt.Value, error) {
	return defaultReader.Read(data)
}

// ReadChunks decodes every present chunk of a region together with its slot, coordinates
// and timestamp.
func ReadChunks(data []byte) ([]region.Chunk, error) {
	return defaultReader.ReadChunks(data)
}

// DecodeChunk decodes one chunk blob: the 5-byte prefix, the zlib payload and the tag
// tree inside it.
func DecodeChunk(data []byte) (nbt.NamedTag, error) {
	return blob.Decode(data)
}

// DecodeNBT decodes an uncompressed tag tree.
func DecodeNBT(data []byte) (nbt.NamedTag, error) {
	return nbt.Decode(data)
}
