// Package intern deduplicates the compound entry names decoded from tag trees.
//
// A region holds up to 1024 chunks that repeat the same few hundred entry names
// ("DataVersion", "sections", "block_states", ...). Interning returns one shared
// string per distinct name instead of allocating a fresh copy for every occurrence.
//
// Names are keyed by their xxHash64. A hit is confirmed by comparing the cached
// string with the raw bytes, so a hash collision simply falls back to a fresh
// allocation. The table is bounded by an LRU and is safe for concurrent use.
package intern

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default number of distinct names retained.
const DefaultSize = 4096

// MaxNameLength is the longest name that is interned; longer names are always copied.
const MaxNameLength = 64

// Table is a bounded, concurrency-safe string intern table.
type Table struct {
	cache *lru.Cache[uint64, string]
}

// New creates a Table retaining up to size distinct names.
func New(size int) (*Table, error) {
	cache, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, fmt.Errorf("create intern table: %w", err)
	}

	return &Table{cache: cache}, nil
}

// ID computes the xxHash64 of the given name bytes.
func ID(name []byte) uint64 {
	return xxhash.Sum64(name)
}

// String returns a string equal to b, sharing storage with earlier calls for the
// same bytes when possible. The result never aliases b.
//
// A nil Table copies b without interning.
func (t *Table) String(b []byte) string {
	if t == nil || len(b) == 0 || len(b) > MaxNameLength {
		return string(b)
	}

	id := ID(b)
	if s, ok := t.cache.Get(id); ok && s == string(b) {
		return s
	}

	s := string(b)
	t.cache.Add(id, s)

	return s
}

// Len returns the number of names currently retained.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return t.cache.Len()
}
