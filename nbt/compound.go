package nbt

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Compound is an ordered mapping from names to values.
//
// Entries keep the order in which they were first set. Setting an existing name
// replaces its value in place.
type Compound struct {
	names  []string
	values map[string]Value
}

var _ json.Marshaler = (*Compound)(nil)

// NewCompound creates an empty Compound.
func NewCompound() *Compound {
	return &Compound{values: make(map[string]Value)}
}

// Kind returns TagCompound.
func (c *Compound) Kind() TagKind { return TagCompound }

func (c *Compound) isValue() {}

// Len returns the number of entries.
func (c *Compound) Len() int {
	return len(c.names)
}

// Get returns the value stored under name.
func (c *Compound) Get(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Set stores v under name.
func (c *Compound) Set(name string, v Value) {
	if c.values == nil {
		c.values = make(map[string]Value)
	}
	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}
	c.values[name] = v
}

// Keys returns the entry names in order. The slice is a copy.
func (c *Compound) Keys() []string {
	keys := make([]string, len(c.names))
	copy(keys, c.names)

	return keys
}

// All iterates over the entries in order.
func (c *Compound) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range c.names {
			if !yield(name, c.values[name]) {
				return
			}
		}
	}
}

// MarshalJSON renders the compound as a JSON object, keeping entry order.
func (c *Compound) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.values[name])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
