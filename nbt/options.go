package nbt

import (
	"github.com/arloliu/mca/internal/intern"
	"github.com/arloliu/mca/internal/options"
)

const (
	// DefaultMaxDepth is the default limit on Compound and List nesting.
	DefaultMaxDepth = 512
	// DefaultMaxAllocSize is the default limit, in bytes, on any single allocation
	// requested by a count field.
	DefaultMaxAllocSize = 64 << 20
	// DefaultMaxTotalAlloc is the default limit, in bytes, on the estimated memory of
	// one decoded tree.
	DefaultMaxTotalAlloc = 256 << 20
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithMaxDepth limits how deeply Compounds and Lists may nest. The root Compound is
// depth 1.
func WithMaxDepth(depth int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if err := options.Positive("max depth", depth); err != nil {
			return err
		}
		d.maxDepth = depth

		return nil
	})
}

// WithMaxAllocSize limits the bytes any single array or list allocation may request.
func WithMaxAllocSize(size int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if err := options.Positive("max alloc size", size); err != nil {
			return err
		}
		d.maxAllocSize = size

		return nil
	})
}

// WithMaxTotalAlloc limits the estimated bytes one decoded tree may allocate, summed
// over every value, name, array, list and compound it holds.
func WithMaxTotalAlloc(size int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if err := options.Positive("max total alloc", size); err != nil {
			return err
		}
		d.maxTotalAlloc = size

		return nil
	})
}

// WithNameInterning shares compound entry names through a bounded table holding up to
// size distinct names. Decoding many chunks of the same shape then allocates each name
// once.
func WithNameInterning(size int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if err := options.Positive("name interning size", size); err != nil {
			return err
		}

		names, err := intern.New(size)
		if err != nil {
			return err
		}
		d.names = names

		return nil
	})
}
