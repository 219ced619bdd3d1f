package nbt

import (
	"math"

	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/errs"
)

// cursor reads big-endian fields from a buffer, front to back, and tracks how many
// bytes the values decoded so far may still allocate.
type cursor struct {
	data   []byte
	pos    int
	budget int64
	engine endian.EndianEngine
}

func newCursor(data []byte, budget int64) *cursor {
	return &cursor{
		data:   data,
		budget: budget,
		engine: endian.GetBigEndianEngine(),
	}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// take returns the next n bytes and advances past them. The result aliases the buffer.
func (c *cursor) take(n int) ([]byte, error) {
	if n > c.remaining() {
		return nil, errs.Errorf(errs.ErrTruncated, c.pos, "need %d bytes, have %d", n, c.remaining())
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint16(b), nil
}

func (c *cursor) i16() (int16, error) {
	v, err := c.u16()
	return int16(v), err
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint32(b), nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}

func (c *cursor) i64() (int64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}

	return int64(c.engine.Uint64(b)), nil
}

func (c *cursor) f32() (float32, error) {
	v, err := c.u32()
	return math.Float32frombits(v), err
}

func (c *cursor) f64() (float64, error) {
	v, err := c.i64()
	return math.Float64frombits(uint64(v)), err
}
