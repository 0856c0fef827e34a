package threading

import (
	"fmt"
	"io"
	"runtime"
	"testing"
)

// BenchmarkFill benchmarks every strategy over a range of bitmap sizes,
// using one worker per CPU.
func BenchmarkFill(b *testing.B) {
	sizes := []int{64, 512, 2048}
	workers := runtime.NumCPU()

	for _, s := range Strategies {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%dx%d", s, size, size), func(b *testing.B) {
				bm := NewBitmap(size)

				b.ResetTimer()
				b.ReportAllocs()

				for b.Loop() {
					Fill(s, bm, workers)
				}
			})
		}
	}
}

// BenchmarkThreadCreation measures the cost of creating, starting and
// joining a thread which does no work.
func BenchmarkThreadCreation(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		t := NewThread(func() {})
		t.Start()
		t.Join()
	}
}

// BenchmarkWritePNG measures encoding of a 1024x1024 bitmap, at full
// size and as a thumbnail.
func BenchmarkWritePNG(b *testing.B) {
	bm := NewBitmap(1024)
	Fill(Chunked, bm, runtime.NumCPU())

	for _, thumb := range []int{0, 128} {
		b.Run(fmt.Sprintf("thumb%d", thumb), func(b *testing.B) {
			for b.Loop() {
				if err := WritePNG(io.Discard, bm, thumb); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
