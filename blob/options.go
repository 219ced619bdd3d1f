package blob

import (
	"github.com/arloliu/mca/internal/options"
	"github.com/arloliu/mca/nbt"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithTagDecoder sets the tag decoder used for inflated payloads.
func WithTagDecoder(tags *nbt.Decoder) DecoderOption {
	return options.NoError(func(d *Decoder) {
		if tags != nil {
			d.tags = tags
		}
	})
}

// WithMaxInflateSize limits the decompressed size of one payload. It defaults to the
// tag decoder's MaxAllocSize.
func WithMaxInflateSize(size int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if err := options.Positive("max inflate size", size); err != nil {
			return err
		}
		d.maxInflateSize = size

		return nil
	})
}
