package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/mca/internal/pool"
	"github.com/klauspost/compress/zlib"
)

// zlibReaderPool pools zlib readers. Pooled readers are re-armed with zlib.Resetter,
// which avoids reallocating the inflate window for every chunk.
var zlibReaderPool sync.Pool

// zlibWriterPool pools zlib writers for reuse.
var zlibWriterPool = sync.Pool{
	New: func() any {
		return zlib.NewWriter(nil)
	},
}

// ZlibCompressor implements the RFC 1950 zlib format used by region chunk blobs.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a new zlib codec.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress compresses the input data into a complete zlib stream.
//
// Unlike the decompression side, empty input produces a valid (non-empty) stream.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, _ := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(zw)
	zw.Reset(&buf)

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a complete zlib stream.
//
// The stream's Adler-32 checksum is verified; trailing bytes after the stream end
// are ignored.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	buf := pool.GetInflateBuffer()
	defer pool.PutInflateBuffer(buf)

	if _, err := c.DecompressTo(buf, data, 0); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}

// DecompressTo inflates data into dst, failing with ErrSizeLimit when the output
// grows past a positive limit.
func (c ZlibCompressor) DecompressTo(dst io.Writer, data []byte, limit int64) (int64, error) {
	zr, err := getZlibReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer zlibReaderPool.Put(zr)

	var src io.Reader = zr
	if limit > 0 {
		src = io.LimitReader(zr, limit+1)
	}

	n, err := io.Copy(dst, src)
	if err != nil {
		return n, fmt.Errorf("zlib decompression failed: %w", err)
	}
	if limit > 0 && n > limit {
		return n, fmt.Errorf("%w: more than %d bytes", ErrSizeLimit, limit)
	}

	return n, nil
}

func getZlibReader(r io.Reader) (io.ReadCloser, error) {
	if zr, ok := zlibReaderPool.Get().(io.ReadCloser); ok {
		if err := zr.(zlib.Resetter).Reset(r, nil); err != nil {
			zlibReaderPool.Put(zr)
			return nil, err
		}

		return zr, nil
	}

	return zlib.NewReader(r)
}
