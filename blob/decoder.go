package blob

import (
	"errors"

	"github.com/arloliu/mca/compress"
	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/internal/options"
	"github.com/arloliu/mca/internal/pool"
	"github.com/arloliu/mca/nbt"
	"github.com/arloliu/mca/section"
)

// Decoder inflates chunk blobs and decodes their tag trees.
//
// A Decoder is safe for concurrent use.
type Decoder struct {
	tags           *nbt.Decoder
	maxInflateSize int
	engine         endian.EndianEngine
}

var defaultDecoder, _ = NewDecoder()

// NewDecoder creates a Decoder.
//
// Parameters:
//   - opts: Optional configuration (WithTagDecoder, WithMaxInflateSize)
//
// Returns:
//   - *Decoder: Decoder ready for concurrent use
//   - error: Invalid option value
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{engine: endian.GetBigEndianEngine()}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	if d.tags == nil {
		tags, err := nbt.NewDecoder()
		if err != nil {
			return nil, err
		}
		d.tags = tags
	}
	if d.maxInflateSize == 0 {
		d.maxInflateSize = d.tags.MaxAllocSize()
	}

	return d, nil
}

// Decompress inflates the payload of a chunk blob with the default limits.
func Decompress(data []byte) ([]byte, error) {
	return defaultDecoder.Decompress(data)
}

// Decode inflates a chunk blob and decodes its tag tree with the default limits.
func Decode(data []byte) (nbt.NamedTag, error) {
	return defaultDecoder.Decode(data)
}

// Decompress inflates the payload of a chunk blob.
//
// Returns:
//   - []byte: Decompressed bytes, owned by the caller
//   - error: *errs.FormatError of kind ErrTruncated, ErrUnsupportedCompression,
//     ErrInvalidLength or ErrResourceLimit
func (d *Decoder) Decompress(data []byte) ([]byte, error) {
	buf := pool.GetInflateBuffer()
	defer pool.PutInflateBuffer(buf)

	if err := d.inflate(buf, data); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}

// Decode inflates a chunk blob and decodes the tag tree it holds.
//
// Returns:
//   - nbt.NamedTag: Root tag of the chunk
//   - error: Any Decompress error, or a tag-tree decoding error
func (d *Decoder) Decode(data []byte) (nbt.NamedTag, error) {
	buf := pool.GetInflateBuffer()
	defer pool.PutInflateBuffer(buf)

	if err := d.inflate(buf, data); err != nil {
		return nbt.NamedTag{}, err
	}

	return d.tags.Decode(buf.Bytes())
}

// inflate validates the blob prefix and inflates exactly the declared payload into buf.
func (d *Decoder) inflate(buf *pool.ByteBuffer, data []byte) error {
	header, err := section.ParseChunkHeader(data, d.engine)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return errs.Errorf(errs.ErrUnsupportedCompression, section.ChunkLengthSize, "%v", err)
	}

	payload, err := header.Payload(data)
	if err != nil {
		return err
	}

	if _, err := codec.DecompressTo(buf, payload, int64(d.maxInflateSize)); err != nil {
		if errors.Is(err, compress.ErrSizeLimit) {
			return errs.Errorf(errs.ErrResourceLimit, section.ChunkHeaderSize,
				"payload inflates past %d bytes", d.maxInflateSize)
		}

		return errs.Errorf(errs.ErrTruncated, section.ChunkHeaderSize, "%v", err)
	}

	return nil
}
