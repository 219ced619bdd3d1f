// Package region reads region containers: a 1024-slot location table followed by
// sector-aligned chunk blobs.
//
// # File Layout
//
//	+--------------------+ 0
//	| location table     |  1024 x (3-byte sector offset, 1-byte sector count)
//	+--------------------+ 4096
//	| timestamp table    |  1024 x uint32 seconds, optional
//	+--------------------+ 8192
//	| chunk blobs        |  each starts on a 4096-byte sector boundary
//	| ...                |
//	+--------------------+
//
// Slot i describes the chunk at x = i % 32, z = i / 32 within the region. A slot of
// (0, 0) means the chunk was never generated and is skipped.
//
// # Reading
//
//	r, err := region.NewReader(region.WithWorkers(runtime.NumCPU()))
//	if err != nil {
//	    return err
//	}
//	chunks, err := r.ReadChunks(data)
//	if err != nil {
//	    var ce *region.ChunkError
//	    if errors.As(err, &ce) {
//	        log.Printf("chunk %d is corrupt", ce.Index)
//	    }
//	    return err
//	}
//
// Results are always in table order, whatever the number of workers. The first failing
// chunk, by table index, aborts the read and no partial result is returned. Callers that
// want to skip bad chunks decode slots one at a time with Reader.Chunk.
//
// # Thread Safety
//
// A Reader is safe for concurrent use. The region buffer is only read.
package region
