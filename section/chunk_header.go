package section

import (
	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/format"
)

// ChunkHeader is the 5-byte prefix of a chunk blob.
type ChunkHeader struct {
	// Length counts the bytes after the length field: the method byte plus the payload.
	Length uint32
	// Compression is the method code of the payload.
	Compression format.CompressionType
}

// ParseChunkHeader parses the prefix at the start of a chunk blob.
//
// Returns:
//   - ChunkHeader: Parsed prefix
//   - error: ErrTruncated if data holds fewer than ChunkHeaderSize bytes
func ParseChunkHeader(data []byte, engine endian.EndianEngine) (ChunkHeader, error) {
	if len(data) < ChunkHeaderSize {
		return ChunkHeader{}, errs.Errorf(errs.ErrTruncated, len(data), "chunk header needs %d bytes, have %d", ChunkHeaderSize, len(data))
	}

	return ChunkHeader{
		Length:      engine.Uint32(data[0:ChunkLengthSize]),
		Compression: format.CompressionType(data[ChunkLengthSize]),
	}, nil
}

// PayloadSize returns the number of compressed payload bytes, Length-1.
//
// Returns:
//   - int64: Payload size
//   - error: ErrInvalidLength if Length is zero
func (h ChunkHeader) PayloadSize() (int64, error) {
	if h.Length == 0 {
		return 0, errs.Errorf(errs.ErrInvalidLength, 0, "chunk length 0 leaves a payload of -1 bytes")
	}

	return int64(h.Length) - 1, nil
}

// Payload returns the compressed payload of blob, excluding any trailing padding.
//
// The returned slice aliases blob.
//
// Returns:
//   - []byte: blob[5 : 4+Length]
//   - error: ErrInvalidLength for a zero Length, ErrTruncated if blob is shorter than 4+Length
func (h ChunkHeader) Payload(blob []byte) ([]byte, error) {
	size, err := h.PayloadSize()
	if err != nil {
		return nil, err
	}

	end := int64(ChunkHeaderSize) + size
	if end > int64(len(blob)) {
		return nil, errs.Errorf(errs.ErrTruncated, len(blob), "chunk length %d needs %d bytes, blob has %d", h.Length, end, len(blob))
	}

	return blob[ChunkHeaderSize:end], nil
}

// PutBytes encodes the prefix into data[0:5].
func (h ChunkHeader) PutBytes(data []byte, engine endian.EndianEngine) {
	engine.PutUint32(data[0:ChunkLengthSize], h.Length)
	data[ChunkLengthSize] = byte(h.Compression)
}
