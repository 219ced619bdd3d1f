package region

import (
	"context"
	"iter"
	"math"
	"sync"
	"sync/atomic"

	"github.com/arloliu/mca/blob"
	"github.com/arloliu/mca/internal/options"
	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/section"
)

// Reader decodes region containers.
type Reader struct {
	blobs   *blob.Decoder
	workers int
}

// NewReader creates a Reader.
//
// Parameters:
//   - opts: Optional configuration (WithWorkers, WithMaxDepth, WithMaxAllocSize,
//     WithMaxTotalAlloc, WithNameInterning)
//
// Returns:
//   - *Reader: Reader ready for concurrent use
//   - error: Invalid option value
func NewReader(opts ...ReaderOption) (*Reader, error) {
	cfg := &readerConfig{
		workers:       DefaultWorkers,
		maxDepth:      nbt.DefaultMaxDepth,
		maxAllocSize:  nbt.DefaultMaxAllocSize,
		maxTotalAlloc: nbt.DefaultMaxTotalAlloc,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	tags, err := nbt.NewDecoder(cfg.tagOptions()...)
	if err != nil {
		return nil, err
	}

	blobs, err := blob.NewDecoder(blob.WithTagDecoder(tags))
	if err != nil {
		return nil, err
	}

	return &Reader{blobs: blobs, workers: cfg.workers}, nil
}

// Read decodes every present chunk of data and returns their root values in table order.
func (r *Reader) Read(data []byte) ([]nbt.Value, error) {
	return r.ReadContext(context.Background(), data)
}

// ReadContext is Read with cancellation checked between chunks.
func (r *Reader) ReadContext(ctx context.Context, data []byte) ([]nbt.Value, error) {
	chunks, err := r.ReadChunksContext(ctx, data)
	if err != nil {
		return nil, err
	}

	values := make([]nbt.Value, len(chunks))
	for i := range chunks {
		values[i] = chunks[i].Root
	}

	return values, nil
}

// ReadChunks decodes every present chunk of data with its table metadata.
func (r *Reader) ReadChunks(data []byte) ([]Chunk, error) {
	return r.ReadChunksContext(context.Background(), data)
}

// ReadChunksContext decodes every present chunk of data in table order.
//
// Returns:
//   - []Chunk: One entry per non-empty slot, ordered by slot index
//   - error: ErrTruncated for a region shorter than the location table, a *ChunkError
//     for the lowest-index chunk that failed, or ctx.Err()
func (r *Reader) ReadChunksContext(ctx context.Context, data []byte) ([]Chunk, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	slots := make([]int, 0, header.Present())
	for i, loc := range header.Locations {
		if !loc.IsEmpty() {
			slots = append(slots, i)
		}
	}

	if r.workers <= 1 || len(slots) <= 1 {
		return r.decodeSequential(ctx, header, data, slots)
	}

	return r.decodeParallel(ctx, header, data, slots)
}

// Chunk decodes the single slot index of data.
//
// Returns:
//   - Chunk: The decoded chunk
//   - error: ErrChunkAbsent for an empty slot, or a *ChunkError
func (r *Reader) Chunk(data []byte, index int) (Chunk, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return Chunk{}, err
	}
	if index < 0 || index >= len(header.Locations) || header.Locations[index].IsEmpty() {
		return Chunk{}, newChunkError(index, ErrChunkAbsent)
	}

	return r.decodeSlot(header, data, index)
}

// All decodes the present slots of data one at a time, in table order, on the calling
// goroutine. A failed slot yields its *ChunkError and iteration continues with the next
// slot. A header that cannot be parsed yields a single error.
func (r *Reader) All(data []byte) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		header, err := section.ParseHeader(data)
		if err != nil {
			yield(Chunk{}, err)
			return
		}

		for i, loc := range header.Locations {
			if loc.IsEmpty() {
				continue
			}
			if !yield(r.decodeSlot(header, data, i)) {
				return
			}
		}
	}
}

func (r *Reader) decodeSlot(header *section.Header, data []byte, index int) (Chunk, error) {
	loc := header.Locations[index]

	raw, err := loc.Slice(data)
	if err != nil {
		return Chunk{}, newChunkError(index, err)
	}

	root, err := r.blobs.Decode(raw)
	if err != nil {
		return Chunk{}, newChunkError(index, err)
	}

	x, z := section.ChunkCoords(index)

	return Chunk{
		Index:     index,
		X:         x,
		Z:         z,
		Location:  loc,
		Timestamp: header.Timestamp(index),
		Name:      root.Name,
		Root:      root.Value,
	}, nil
}

func (r *Reader) decodeSequential(ctx context.Context, header *section.Header, data []byte, slots []int) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(slots))
	for _, index := range slots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk, err := r.decodeSlot(header, data, index)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}

// decodeParallel fans slots out to r.workers goroutines. Each result is written to its
// own position, so the output order does not depend on scheduling. Once a slot fails,
// later slots are skipped but earlier ones still run, which makes the reported error
// the same one decodeSequential would return.
func (r *Reader) decodeParallel(ctx context.Context, header *section.Header, data []byte, slots []int) ([]Chunk, error) {
	chunks := make([]Chunk, len(slots))
	failures := make([]error, len(slots))

	var firstFailed atomic.Int64
	firstFailed.Store(math.MaxInt64)

	positions := make(chan int, r.workers)

	var wg sync.WaitGroup
	wg.Add(r.workers)
	for range r.workers {
		go func() {
			defer wg.Done()
			for pos := range positions {
				if int64(pos) > firstFailed.Load() || ctx.Err() != nil {
					continue
				}

				chunk, err := r.decodeSlot(header, data, slots[pos])
				if err != nil {
					failures[pos] = err
					lowerTo(&firstFailed, int64(pos))

					continue
				}
				chunks[pos] = chunk
			}
		}()
	}

feed:
	for pos := range slots {
		if int64(pos) > firstFailed.Load() {
			break
		}
		select {
		case positions <- pos:
		case <-ctx.Done():
			break feed
		}
	}
	close(positions)
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}

// lowerTo stores v into m if it is lower than the current value.
func lowerTo(m *atomic.Int64, v int64) {
	for {
		cur := m.Load()
		if v >= cur || m.CompareAndSwap(cur, v) {
			return
		}
	}
}
