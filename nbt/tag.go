package nbt

import "fmt"

// TagKind identifies the type of a tag and its payload layout.
type TagKind uint8

const (
	TagEnd       TagKind = 0
	TagByte      TagKind = 1
	TagShort     TagKind = 2
	TagInt       TagKind = 3
	TagLong      TagKind = 4
	TagFloat     TagKind = 5
	TagDouble    TagKind = 6
	TagByteArray TagKind = 7
	TagString    TagKind = 8
	TagList      TagKind = 9
	TagCompound  TagKind = 10
	TagIntArray  TagKind = 11
	TagLongArray TagKind = 12
)

var tagKindNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

// minPayloadSizes holds the smallest encoded payload of each kind. A List declaring
// count elements needs at least count*minPayloadSize bytes of input.
var minPayloadSizes = [...]int{
	TagEnd:       0,
	TagByte:      1,
	TagShort:     2,
	TagInt:       4,
	TagLong:      8,
	TagFloat:     4,
	TagDouble:    8,
	TagByteArray: 4,
	TagString:    2,
	TagList:      5,
	TagCompound:  1,
	TagIntArray:  4,
	TagLongArray: 4,
}

// Valid reports whether k is one of the thirteen defined kinds.
func (k TagKind) Valid() bool {
	return k <= TagLongArray
}

// String returns the kind's name, or TagKind(n) for undefined values.
func (k TagKind) String() string {
	if k.Valid() {
		return tagKindNames[k]
	}

	return fmt.Sprintf("TagKind(%d)", uint8(k))
}

func (k TagKind) minPayloadSize() int {
	return minPayloadSizes[k]
}
