package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arloliu/mca/internal/pool"
)

func generateChunkLikeData(size int) []byte {
	pattern := []byte("minecraft:stone\x00\x0Bblock_states\x00\x00\x00\x10")
	data := make([]byte, size)
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func BenchmarkZlib_Decompress(b *testing.B) {
	codec := NewZlibCompressor()

	for _, size := range []int{4096, 65536, 262144} {
		data := generateChunkLikeData(size)
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))

			for b.Loop() {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkZlib_DecompressTo_Pooled(b *testing.B) {
	codec := NewZlibCompressor()
	data := generateChunkLikeData(65536)
	compressed, err := codec.Compress(data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		buf := pool.GetInflateBuffer()
		if _, err := codec.DecompressTo(buf, compressed, 0); err != nil {
			b.Fatal(err)
		}
		pool.PutInflateBuffer(buf)
	}
}

func BenchmarkZlib_Compress(b *testing.B) {
	codec := NewZlibCompressor()
	data := generateChunkLikeData(65536)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if _, err := codec.Compress(bytes.Clone(data)); err != nil {
			b.Fatal(err)
		}
	}
}
