package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/arloliu/mca/internal/intern"
	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/region"
)

type chunkRecord struct {
	Index     int        `json:"index"`
	X         int        `json:"x"`
	Z         int        `json:"z"`
	Sector    uint32     `json:"sector"`
	Sectors   uint8      `json:"sectors"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Name      string     `json:"name"`
	Root      nbt.Value  `json:"root"`
}

func runDump(out io.Writer, logger *slog.Logger, path string, opts *dumpOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read region: %w", err)
	}
	logger.Debug("read region", "path", path, "bytes", len(data))

	reader, err := region.NewReader(
		region.WithWorkers(opts.workers),
		region.WithMaxDepth(opts.maxDepth),
		region.WithMaxAllocSize(opts.maxAlloc),
		region.WithMaxTotalAlloc(opts.maxTotalAlloc),
		region.WithNameInterning(intern.DefaultSize),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	chunks, err := collectChunks(reader, data, opts, logger)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.Debug("decoded region", "chunks", len(chunks), "elapsed", time.Since(start))

	if opts.jsonOut {
		return printJSON(out, toRecords(chunks))
	}

	printSummary(out, path, chunks)

	return nil
}

func collectChunks(reader *region.Reader, data []byte, opts *dumpOptions, logger *slog.Logger) ([]region.Chunk, error) {
	if opts.chunk >= 0 {
		chunk, err := reader.Chunk(data, opts.chunk)
		if err != nil {
			return nil, err
		}

		return []region.Chunk{chunk}, nil
	}

	if !opts.skipBad {
		return reader.ReadChunks(data)
	}

	var chunks []region.Chunk
	skipped := 0
	for chunk, err := range reader.All(data) {
		if err != nil {
			var ce *region.ChunkError
			if !errors.As(err, &ce) {
				return nil, err
			}
			logger.Warn("skipping chunk", "index", ce.Index, "x", ce.X, "z", ce.Z, "error", ce.Err)
			skipped++

			continue
		}
		chunks = append(chunks, chunk)
	}
	if skipped > 0 {
		logger.Info("skipped corrupt chunks", "skipped", skipped, "decoded", len(chunks))
	}

	return chunks, nil
}

func toRecords(chunks []region.Chunk) []chunkRecord {
	records := make([]chunkRecord, len(chunks))
	for i, c := range chunks {
		records[i] = chunkRecord{
			Index:   c.Index,
			X:       c.X,
			Z:       c.Z,
			Sector:  c.Location.Offset,
			Sectors: c.Location.Count,
			Name:    c.Name,
			Root:    c.Root,
		}
		if !c.Timestamp.IsZero() {
			ts := c.Timestamp
			records[i].Timestamp = &ts
		}
	}

	return records
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func printSummary(out io.Writer, path string, chunks []region.Chunk) {
	fmt.Fprintf(out, "%s: %d chunks\n", path, len(chunks))
	for _, c := range chunks {
		modified := "-"
		if !c.Timestamp.IsZero() {
			modified = c.Timestamp.Format(time.RFC3339)
		}

		fmt.Fprintf(out, "chunk %4d (x=%2d, z=%2d) sectors %d+%d modified %s %s\n",
			c.Index, c.X, c.Z, c.Location.Offset, c.Location.Count, modified, describe(c.Root))
	}
}

// describe names the root kind and, for containers, its size.
func describe(v nbt.Value) string {
	switch v := v.(type) {
	case *nbt.Compound:
		return fmt.Sprintf("Compound entries=%d", v.Len())
	case *nbt.List:
		return fmt.Sprintf("List<%s> len=%d", v.ElemKind, v.Len())
	default:
		return v.Kind().String()
	}
}
