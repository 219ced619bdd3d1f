package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/mca/format"
)

// ErrSizeLimit is returned when a payload inflates beyond the caller's limit.
var ErrSizeLimit = errors.New("decompressed size exceeds limit")

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor inflates a complete compressed payload.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionZlib)
//	raw, err := codec.Decompress(payload)
//	if err != nil {
//	    return fmt.Errorf("inflate chunk: %w", err)
//	}
//
// Thread Safety: implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or not in the codec's format
	//   - Returns error if the stream ends before it is complete
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)

	// DecompressTo streams the decompressed bytes of data into dst.
	//
	// When limit is positive, producing more than limit bytes fails with ErrSizeLimit
	// after at most limit+1 bytes were written. A limit of zero or less means no limit.
	//
	// Returns the number of bytes written to dst.
	DecompressTo(dst io.Writer, data []byte, limit int64) (int64, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionZlib: NewZlibCompressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Only zlib is built in. Every other method code, including gzip and LZ4, returns
// an error.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s (0x%02x)", compressionType, uint8(compressionType))
}

// Supported reports whether GetCodec has a codec for compressionType.
func Supported(compressionType format.CompressionType) bool {
	_, ok := builtinCodecs[compressionType]
	return ok
}
