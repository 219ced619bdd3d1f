// Package section defines the fixed binary structures of a region container.
//
// This package handles the byte-level layout of the region header and of the prefix
// that precedes every chunk blob. It knows nothing about compression or tag trees;
// the blob and region packages build on it.
//
// # Region Structure
//
// A region container is divided into 4096-byte sectors:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Sector 0: Location table (1024 × 4 bytes)               │
//	│  - 3 bytes: sector offset (big-endian, unsigned)        │
//	│  - 1 byte:  sector count                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Sector 1: Timestamp table (1024 × 4 bytes, optional)    │
//	│  - big-endian uint32 seconds since the Unix epoch       │
//	├─────────────────────────────────────────────────────────┤
//	│ Sector 2..N: Chunk blobs, each padded to whole sectors  │
//	└─────────────────────────────────────────────────────────┘
//
// Entry i of the location table occupies bytes [4i, 4i+4). A location of (0, 0)
// marks a chunk that has not been generated. Slot i maps to the chunk at
// x = i % 32, z = i / 32 within the region.
//
// # Chunk Blob Format
//
//	Bytes   | Field       | Type   | Description
//	--------|-------------|--------|------------------------------------------
//	0-3     | Length      | uint32 | Bytes that follow, including Compression
//	4       | Compression | uint8  | Compression method code
//	5-(4+L) | Payload     | bytes  | Compressed tag tree, Length-1 bytes
//
// Bytes after 4+Length up to the end of the last sector are padding and are never
// read.
//
// # Error Handling
//
// All parse failures are *errs.FormatError values carrying the offending offset:
//   - errs.ErrTruncated: the buffer is shorter than the structure being read
//   - errs.ErrInvalidLength: a chunk Length of zero (it must include the method byte)
//
// # Thread Safety
//
// Parsed structures are plain values with no internal state; they are safe to share
// once parsed.
package section
