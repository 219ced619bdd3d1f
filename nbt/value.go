package nbt

import (
	"encoding/json"
	"math"
)

// Value is a decoded tag payload.
//
// The set of implementations is closed: End, Byte, Short, Int, Long, Float, Double,
// ByteArray, String, *List, *Compound, IntArray and LongArray.
type Value interface {
	// Kind returns the tag kind the value was decoded from.
	Kind() TagKind
	isValue()
}

type (
	// End is the payload-less terminator tag. It only appears as a decoded value when
	// the root tag itself is End.
	End struct{}
	// Byte is a signed 8-bit integer.
	Byte int8
	// Short is a signed 16-bit integer.
	Short int16
	// Int is a signed 32-bit integer.
	Int int32
	// Long is a signed 64-bit integer.
	Long int64
	// Float is an IEEE-754 single precision number.
	Float float32
	// Double is an IEEE-754 double precision number.
	Double float64
	// ByteArray is a sequence of signed bytes.
	ByteArray []int8
	// String is a UTF-8 string.
	String string
	// IntArray is a sequence of signed 32-bit integers.
	IntArray []int32
	// LongArray is a sequence of signed 64-bit integers.
	LongArray []int64
)

var (
	_ Value = End{}
	_ Value = Byte(0)
	_ Value = Short(0)
	_ Value = Int(0)
	_ Value = Long(0)
	_ Value = Float(0)
	_ Value = Double(0)
	_ Value = ByteArray(nil)
	_ Value = String("")
	_ Value = (*List)(nil)
	_ Value = (*Compound)(nil)
	_ Value = IntArray(nil)
	_ Value = LongArray(nil)
)

func (End) Kind() TagKind       { return TagEnd }
func (Byte) Kind() TagKind      { return TagByte }
func (Short) Kind() TagKind     { return TagShort }
func (Int) Kind() TagKind       { return TagInt }
func (Long) Kind() TagKind      { return TagLong }
func (Float) Kind() TagKind     { return TagFloat }
func (Double) Kind() TagKind    { return TagDouble }
func (ByteArray) Kind() TagKind { return TagByteArray }
func (String) Kind() TagKind    { return TagString }
func (IntArray) Kind() TagKind  { return TagIntArray }
func (LongArray) Kind() TagKind { return TagLongArray }

func (End) isValue()       {}
func (Byte) isValue()      {}
func (Short) isValue()     {}
func (Int) isValue()       {}
func (Long) isValue()      {}
func (Float) isValue()     {}
func (Double) isValue()    {}
func (ByteArray) isValue() {}
func (String) isValue()    {}
func (IntArray) isValue()  {}
func (LongArray) isValue() {}

// MarshalJSON renders End as null.
func (End) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON renders NaN and infinities as the strings "NaN", "+Inf" and "-Inf".
func (f Float) MarshalJSON() ([]byte, error) {
	if s, ok := nonFinite(float64(f)); ok {
		return json.Marshal(s)
	}

	return json.Marshal(float32(f))
}

// MarshalJSON renders NaN and infinities as the strings "NaN", "+Inf" and "-Inf".
func (d Double) MarshalJSON() ([]byte, error) {
	if s, ok := nonFinite(float64(d)); ok {
		return json.Marshal(s)
	}

	return json.Marshal(float64(d))
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "+Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	default:
		return "", false
	}
}

// NamedTag is a tag decoded in named position, such as the root of a tree.
type NamedTag struct {
	Name  string
	Value Value
}
