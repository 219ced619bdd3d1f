// Package nbt decodes binary tag trees, the recursively typed big-endian format
// stored inside every region chunk.
//
// A tag tree is a single named root tag, usually a Compound. Each tag starts with a
// one-byte kind; named tags follow it with a 2-byte length and a UTF-8 name, then the
// kind's payload:
//
//	kind  name               payload
//	0     End                (none, terminates a Compound)
//	1-6   Byte..Double       1, 2, 4, 8 byte integers, 4 and 8 byte IEEE-754 floats
//	7     ByteArray          int32 count + count bytes
//	8     String             uint16 length + UTF-8 bytes
//	9     List               element kind + int32 count + count unnamed payloads
//	10    Compound           named tags until End
//	11    IntArray           int32 count + count int32
//	12    LongArray          int32 count + count int64
//
// # Basic Usage
//
//	root, err := nbt.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	level, ok := root.Value.(*nbt.Compound)
//	if ok {
//	    version, _ := level.Get("DataVersion")
//	    fmt.Println(version)
//	}
//
// # Values
//
// Decoded trees are built from the closed Value interface. Type switches over the
// thirteen variants are exhaustive:
//
//	switch v := value.(type) {
//	case nbt.Int:
//	    ...
//	case *nbt.List:
//	    fmt.Println(v.ElemKind, v.Len())
//	case *nbt.Compound:
//	    for name, child := range v.All() {
//	        ...
//	    }
//	}
//
// Compounds keep their entries in stream order. Lists keep their element kind even when
// they are empty. Strings and arrays are copied out of the input, so a decoded tree never
// aliases the buffer it was decoded from.
//
// # Limits
//
// A Decoder bounds nesting depth and the size of any single allocation requested by a
// count field. Exceeding either fails with errs.ErrResourceLimit:
//
//	dec, err := nbt.NewDecoder(
//	    nbt.WithMaxDepth(64),
//	    nbt.WithMaxAllocSize(16<<20),
//	)
//
// # Thread Safety
//
// A Decoder is immutable after construction and safe for concurrent use. Decoded trees
// are not synchronized.
package nbt
