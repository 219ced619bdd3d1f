// Package compress provides the decompression codec for region chunk blobs.
//
// Every chunk blob names its compression method in a single byte. The region format
// defines several methods; this package builds exactly one codec:
//
//   - Zlib (format.CompressionZlib, method 2): RFC 1950 zlib, backed by
//     github.com/klauspost/compress/zlib
//
// GetCodec rejects all other method codes, including gzip (1), uncompressed (3) and
// LZ4 (4).
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	    DecompressTo(dst io.Writer, data []byte, limit int64) (int64, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// DecompressTo is the hot path used by the blob package: it streams the inflated
// bytes into a pooled buffer and stops once the output passes a size limit.
//
// # Memory Management
//
// zlib readers and writers are pooled with sync.Pool and re-armed with Reset.
// Decompress copies its result out of a pooled buffer, so the returned slice is
// owned by the caller.
//
// # Thread Safety
//
// ZlibCompressor is stateless and safe for concurrent use.
package compress
