// Package nbtbuild assembles tag trees, chunk blobs and region images byte by byte.
//
// It exists for tests: fixtures are spelled out field by field, including malformed
// ones the decoders must reject.
package nbtbuild

import (
	"math"

	"github.com/arloliu/mca/endian"
	"github.com/arloliu/mca/nbt"
)

// Builder appends big-endian tag-tree fields to a buffer.
type Builder struct {
	buf    []byte
	engine endian.EndianEngine
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{engine: endian.GetBigEndianEngine()}
}

// Bytes returns the assembled bytes.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Raw appends p verbatim.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// Kind appends a kind byte.
func (b *Builder) Kind(kind nbt.TagKind) *Builder {
	b.buf = append(b.buf, byte(kind))
	return b
}

// Str appends a uint16 length followed by the bytes of s.
func (b *Builder) Str(s string) *Builder {
	b.buf = b.engine.AppendUint16(b.buf, uint16(len(s)))
	b.buf = append(b.buf, s...)

	return b
}

// Tag appends a named tag header: kind byte and name.
func (b *Builder) Tag(kind nbt.TagKind, name string) *Builder {
	return b.Kind(kind).Str(name)
}

// End appends an End tag.
func (b *Builder) End() *Builder {
	return b.Kind(nbt.TagEnd)
}

// I8 appends a signed byte.
func (b *Builder) I8(v int8) *Builder {
	b.buf = append(b.buf, byte(v))
	return b
}

// I16 appends a big-endian int16.
func (b *Builder) I16(v int16) *Builder {
	b.buf = b.engine.AppendUint16(b.buf, uint16(v))
	return b
}

// I32 appends a big-endian int32.
func (b *Builder) I32(v int32) *Builder {
	b.buf = b.engine.AppendUint32(b.buf, uint32(v))
	return b
}

// I64 appends a big-endian int64.
func (b *Builder) I64(v int64) *Builder {
	b.buf = b.engine.AppendUint64(b.buf, uint64(v))
	return b
}

// F32 appends a big-endian IEEE-754 single.
func (b *Builder) F32(v float32) *Builder {
	b.buf = b.engine.AppendUint32(b.buf, math.Float32bits(v))
	return b
}

// F64 appends a big-endian IEEE-754 double.
func (b *Builder) F64(v float64) *Builder {
	b.buf = b.engine.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// ListHeader appends a list's element kind and count.
func (b *Builder) ListHeader(elemKind nbt.TagKind, count int32) *Builder {
	return b.Kind(elemKind).I32(count)
}

// Named appends a complete named tag.
func (b *Builder) Named(name string, v nbt.Value) *Builder {
	return b.Tag(v.Kind(), name).Payload(v)
}

// Payload appends the payload of v.
func (b *Builder) Payload(v nbt.Value) *Builder {
	switch v := v.(type) {
	case nbt.End:
	case nbt.Byte:
		b.I8(int8(v))
	case nbt.Short:
		b.I16(int16(v))
	case nbt.Int:
		b.I32(int32(v))
	case nbt.Long:
		b.I64(int64(v))
	case nbt.Float:
		b.F32(float32(v))
	case nbt.Double:
		b.F64(float64(v))
	case nbt.ByteArray:
		b.I32(int32(len(v)))
		for _, e := range v {
			b.I8(e)
		}
	case nbt.String:
		b.Str(string(v))
	case *nbt.List:
		b.ListHeader(v.ElemKind, int32(len(v.Elems)))
		for _, e := range v.Elems {
			b.Payload(e)
		}
	case *nbt.Compound:
		for name, e := range v.All() {
			b.Named(name, e)
		}
		b.End()
	case nbt.IntArray:
		b.I32(int32(len(v)))
		for _, e := range v {
			b.I32(e)
		}
	case nbt.LongArray:
		b.I32(int32(len(v)))
		for _, e := range v {
			b.I64(e)
		}
	}

	return b
}

// Encode returns the bytes of a complete tree rooted at a named tag.
func Encode(root nbt.NamedTag) []byte {
	if root.Value.Kind() == nbt.TagEnd {
		return []byte{byte(nbt.TagEnd)}
	}

	return New().Named(root.Name, root.Value).Bytes()
}
