package nbt

import (
	"unicode/utf8"

	"github.com/arloliu/mca/errs"
	"github.com/arloliu/mca/internal/intern"
	"github.com/arloliu/mca/internal/options"
)

// Estimated heap cost, in bytes, charged against the total allocation limit.
const (
	// valueSlotSize is one Value interface slot in a List.
	valueSlotSize = 16
	// valueSize is the boxed payload or slice header behind a Value.
	valueSize = 24
	// compoundSize is a Compound with its empty map.
	compoundSize = 96
	// compoundEntrySize is one name in the order slice plus its map entry.
	compoundEntrySize = 64
	// listSize is a List header.
	listSize = 48
)

// Decoder decodes tag trees under configurable resource limits.
type Decoder struct {
	maxDepth      int
	maxAllocSize  int
	maxTotalAlloc int
	names         *intern.Table
}

var defaultDecoder = &Decoder{
	maxDepth:      DefaultMaxDepth,
	maxAllocSize:  DefaultMaxAllocSize,
	maxTotalAlloc: DefaultMaxTotalAlloc,
}

// NewDecoder creates a Decoder.
//
// Parameters:
//   - opts: Optional configuration (WithMaxDepth, WithMaxAllocSize, WithMaxTotalAlloc,
//     WithNameInterning)
//
// Returns:
//   - *Decoder: Decoder ready for concurrent use
//   - error: Invalid option value
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		maxDepth:      DefaultMaxDepth,
		maxAllocSize:  DefaultMaxAllocSize,
		maxTotalAlloc: DefaultMaxTotalAlloc,
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes one tag tree with the default limits.
func Decode(data []byte) (NamedTag, error) {
	return defaultDecoder.Decode(data)
}

// MaxDepth returns the nesting limit.
func (d *Decoder) MaxDepth() int {
	return d.maxDepth
}

// MaxAllocSize returns the single-allocation limit in bytes.
func (d *Decoder) MaxAllocSize() int {
	return d.maxAllocSize
}

// MaxTotalAlloc returns the per-tree allocation limit in bytes.
func (d *Decoder) MaxTotalAlloc() int {
	return d.maxTotalAlloc
}

// Decode decodes the root tag of data.
//
// A root End tag decodes to a NamedTag with an empty name and an End value. Bytes after
// the root tag are ignored.
//
// Returns:
//   - NamedTag: Root name and value
//   - error: *errs.FormatError of kind ErrTruncated, ErrUnknownTagKind, ErrInvalidUTF8,
//     ErrInvalidLength or ErrResourceLimit
func (d *Decoder) Decode(data []byte) (NamedTag, error) {
	c := newCursor(data, int64(d.maxTotalAlloc))

	kind, err := d.readKind(c)
	if err != nil {
		return NamedTag{}, err
	}
	if kind == TagEnd {
		return NamedTag{Value: End{}}, nil
	}

	return d.decodeNamed(c, kind, 1)
}

func (d *Decoder) readKind(c *cursor) (TagKind, error) {
	pos := c.pos
	b, err := c.u8()
	if err != nil {
		return 0, err
	}

	kind := TagKind(b)
	if !kind.Valid() {
		return 0, errs.Errorf(errs.ErrUnknownTagKind, pos, "kind byte %d", b)
	}

	return kind, nil
}

// charge deducts n estimated bytes from the tree's allocation budget.
func (d *Decoder) charge(c *cursor, n int64) error {
	if n > c.budget {
		return errs.Errorf(errs.ErrResourceLimit, c.pos,
			"decoded tree exceeds total allocation limit of %d bytes", d.maxTotalAlloc)
	}
	c.budget -= n

	return nil
}

// decodeNamed reads the name and payload of a tag whose kind byte was already consumed.
func (d *Decoder) decodeNamed(c *cursor, kind TagKind, depth int) (NamedTag, error) {
	raw, err := d.readUTF8(c)
	if err != nil {
		return NamedTag{}, err
	}
	if err := d.charge(c, int64(len(raw))); err != nil {
		return NamedTag{}, err
	}
	name := d.names.String(raw)

	v, err := d.decodePayload(c, kind, depth)
	if err != nil {
		return NamedTag{}, err
	}

	return NamedTag{Name: name, Value: v}, nil
}

func (d *Decoder) decodePayload(c *cursor, kind TagKind, depth int) (Value, error) {
	if err := d.charge(c, valueSize); err != nil {
		return nil, err
	}

	switch kind {
	case TagByte:
		v, err := c.u8()
		return Byte(int8(v)), err
	case TagShort:
		v, err := c.i16()
		return Short(v), err
	case TagInt:
		v, err := c.i32()
		return Int(v), err
	case TagLong:
		v, err := c.i64()
		return Long(v), err
	case TagFloat:
		v, err := c.f32()
		return Float(v), err
	case TagDouble:
		v, err := c.f64()
		return Double(v), err
	case TagByteArray:
		return d.decodeByteArray(c)
	case TagString:
		b, err := d.readUTF8(c)
		if err != nil {
			return nil, err
		}
		if err := d.charge(c, int64(len(b))); err != nil {
			return nil, err
		}

		return String(b), nil
	case TagList:
		return d.decodeList(c, depth)
	case TagCompound:
		return d.decodeCompound(c, depth)
	case TagIntArray:
		return d.decodeIntArray(c)
	case TagLongArray:
		return d.decodeLongArray(c)
	default:
		// End has no payload and cannot appear where one is required.
		return nil, errs.Errorf(errs.ErrUnknownTagKind, c.pos, "%s has no payload", kind)
	}
}

// readUTF8 reads a uint16 length-prefixed string and validates its encoding. The
// result aliases the buffer.
func (d *Decoder) readUTF8(c *cursor) ([]byte, error) {
	n, err := c.u16()
	if err != nil {
		return nil, err
	}

	pos := c.pos
	b, err := c.take(int(n))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errs.Errorf(errs.ErrInvalidUTF8, pos, "%d byte string", n)
	}

	return b, nil
}

// readCount reads an int32 element count, checks that count elements of width bytes
// fit both the allocation limit and the remaining input, and charges the allocation
// to the tree's budget.
func (d *Decoder) readCount(c *cursor, kind TagKind, width int, allocWidth int) (int, error) {
	pos := c.pos
	v, err := c.i32()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errs.Errorf(errs.ErrInvalidLength, pos, "%s count %d", kind, v)
	}

	count := int(v)
	if int64(count)*int64(allocWidth) > int64(d.maxAllocSize) {
		return 0, errs.Errorf(errs.ErrResourceLimit, pos,
			"%s of %d elements exceeds allocation limit of %d bytes", kind, count, d.maxAllocSize)
	}
	if int64(count)*int64(width) > int64(c.remaining()) {
		return 0, errs.Errorf(errs.ErrTruncated, c.pos,
			"%s of %d elements needs at least %d bytes, have %d", kind, count, int64(count)*int64(width), c.remaining())
	}
	if err := d.charge(c, int64(count)*int64(allocWidth)); err != nil {
		return 0, err
	}

	return count, nil
}

func (d *Decoder) decodeByteArray(c *cursor) (Value, error) {
	n, err := d.readCount(c, TagByteArray, 1, 1)
	if err != nil {
		return nil, err
	}

	b, _ := c.take(n)
	arr := make(ByteArray, n)
	for i, v := range b {
		arr[i] = int8(v)
	}

	return arr, nil
}

func (d *Decoder) decodeIntArray(c *cursor) (Value, error) {
	n, err := d.readCount(c, TagIntArray, 4, 4)
	if err != nil {
		return nil, err
	}

	arr := make(IntArray, n)
	for i := range arr {
		arr[i], _ = c.i32()
	}

	return arr, nil
}

func (d *Decoder) decodeLongArray(c *cursor) (Value, error) {
	n, err := d.readCount(c, TagLongArray, 8, 8)
	if err != nil {
		return nil, err
	}

	arr := make(LongArray, n)
	for i := range arr {
		arr[i], _ = c.i64()
	}

	return arr, nil
}

func (d *Decoder) enter(c *cursor, kind TagKind, depth int) error {
	if depth > d.maxDepth {
		return errs.Errorf(errs.ErrResourceLimit, c.pos, "%s nested %d deep, limit is %d", kind, depth, d.maxDepth)
	}

	return nil
}

func (d *Decoder) decodeList(c *cursor, depth int) (Value, error) {
	if err := d.enter(c, TagList, depth); err != nil {
		return nil, err
	}
	if err := d.charge(c, listSize); err != nil {
		return nil, err
	}

	elemKind, err := d.readKind(c)
	if err != nil {
		return nil, err
	}

	n, err := d.readCount(c, TagList, elemKind.minPayloadSize(), valueSlotSize)
	if err != nil {
		return nil, err
	}
	if elemKind == TagEnd && n > 0 {
		return nil, errs.Errorf(errs.ErrUnknownTagKind, c.pos, "list of %d End elements", n)
	}

	list := &List{ElemKind: elemKind, Elems: make([]Value, n)}
	for i := range list.Elems {
		v, err := d.decodePayload(c, elemKind, depth+1)
		if err != nil {
			return nil, err
		}
		list.Elems[i] = v
	}

	return list, nil
}

func (d *Decoder) decodeCompound(c *cursor, depth int) (Value, error) {
	if err := d.enter(c, TagCompound, depth); err != nil {
		return nil, err
	}
	if err := d.charge(c, compoundSize); err != nil {
		return nil, err
	}

	compound := NewCompound()
	for {
		kind, err := d.readKind(c)
		if err != nil {
			return nil, err
		}
		if kind == TagEnd {
			return compound, nil
		}

		if err := d.charge(c, compoundEntrySize); err != nil {
			return nil, err
		}
		entry, err := d.decodeNamed(c, kind, depth+1)
		if err != nil {
			return nil, err
		}
		compound.Set(entry.Name, entry.Value)
	}
}
