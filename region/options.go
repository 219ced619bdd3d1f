package region

import (
	"github.com/arloliu/mca/internal/options"
	"github.com/arloliu/mca/nbt"
)

// DefaultWorkers decodes chunks on the calling goroutine.
const DefaultWorkers = 1

type readerConfig struct {
	workers       int
	maxDepth      int
	maxAllocSize  int
	maxTotalAlloc int
	internSize    int
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*readerConfig]

// WithWorkers sets how many chunks are decoded concurrently.
func WithWorkers(n int) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if err := options.Positive("workers", n); err != nil {
			return err
		}
		c.workers = n

		return nil
	})
}

// WithMaxDepth limits tag-tree nesting. See nbt.WithMaxDepth.
func WithMaxDepth(depth int) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if err := options.Positive("max depth", depth); err != nil {
			return err
		}
		c.maxDepth = depth

		return nil
	})
}

// WithMaxAllocSize limits single allocations and the inflated size of each chunk.
// See nbt.WithMaxAllocSize.
func WithMaxAllocSize(size int) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if err := options.Positive("max alloc size", size); err != nil {
			return err
		}
		c.maxAllocSize = size

		return nil
	})
}

// WithMaxTotalAlloc limits the estimated memory of each decoded chunk tree.
// See nbt.WithMaxTotalAlloc.
func WithMaxTotalAlloc(size int) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if err := options.Positive("max total alloc", size); err != nil {
			return err
		}
		c.maxTotalAlloc = size

		return nil
	})
}

// WithNameInterning shares compound entry names across all chunks of the reader
// through a table of up to size names.
func WithNameInterning(size int) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if err := options.Positive("name interning size", size); err != nil {
			return err
		}
		c.internSize = size

		return nil
	})
}

func (c *readerConfig) tagOptions() []nbt.DecoderOption {
	opts := []nbt.DecoderOption{
		nbt.WithMaxDepth(c.maxDepth),
		nbt.WithMaxAllocSize(c.maxAllocSize),
		nbt.WithMaxTotalAlloc(c.maxTotalAlloc),
	}
	if c.internSize > 0 {
		opts = append(opts, nbt.WithNameInterning(c.internSize))
	}

	return opts
}
