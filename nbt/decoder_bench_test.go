package nbt_test

import (
	"testing"

	"github.com/arloliu/mca/internal/nbtbuild"
	"github.com/arloliu/mca/nbt"
)

func BenchmarkDecode_SampleChunk(b *testing.B) {
	data := nbtbuild.Encode(nbtbuild.SampleChunk(1, 2))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := nbt.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_NameInterning(b *testing.B) {
	data := nbtbuild.Encode(nbtbuild.SampleChunk(1, 2))
	dec, err := nbt.NewDecoder(nbt.WithNameInterning(256))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := dec.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_LongArray(b *testing.B) {
	builder := nbtbuild.New().Tag(nbt.TagLongArray, "data").I32(4096)
	for i := range 4096 {
		builder.I64(int64(i))
	}
	data := builder.Bytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := nbt.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
