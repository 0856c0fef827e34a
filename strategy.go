// seehuhn.de/go/threading - a walkthrough of threads in Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package threading

import (
	"fmt"
	"time"
)

// Strategy selects how the pixels of a bitmap are distributed over
// goroutines.
type Strategy int

const (
	// Sequential writes all pixels from the calling goroutine, row by row.
	Sequential Strategy = iota

	// Nested runs a parallel loop over the rows, and inside each row a
	// second parallel loop over the columns. Every row pays the cost of
	// setting up a new pool.
	Nested

	// Flat runs a single parallel loop over the flattened pixel index.
	Flat

	// Chunked partitions the pixels into one contiguous chunk per worker
	// and dispatches the chunks to a bounded pool.
	Chunked

	// Threads partitions the pixels like Chunked, but runs each chunk on a
	// manually created, started and joined Thread.
	Threads
)

// Strategies lists all strategies, from the most naive to the most
// hands-on.
var Strategies = []Strategy{Sequential, Nested, Flat, Chunked, Threads}

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Nested:
		return "nested"
	case Flat:
		return "flat"
	case Chunked:
		return "chunked"
	case Threads:
		return "threads"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Timing records how long one run of a strategy took.
type Timing struct {
	Strategy Strategy

	// Total is the wall-clock time of the whole run.
	Total time.Duration

	// Create is the time spent constructing worker threads before any of
	// them was started. Only the Threads strategy sets this.
	Create time.Duration

	// Fill is the time from the start of the pixel work until all workers
	// were joined. For all strategies except Threads this equals Total.
	Fill time.Duration
}

// Fill overwrites every pixel of b using strategy s with the given number
// of workers. workers must be positive; it is ignored by Sequential.
func Fill(s Strategy, b *Bitmap, workers int) Timing {
	t := Timing{Strategy: s}
	start := time.Now()

	switch s {
	case Sequential:
		fillSequential(b)
	case Nested:
		fillNested(b, workers)
	case Flat:
		fillFlat(b, workers)
	case Chunked:
		fillChunks(b, NewPartition(b.Pixels(), workers))
	case Threads:
		t.Create, t.Fill = fillThreads(b, NewPartition(b.Pixels(), workers))
		t.Total = time.Since(start)
		return t
	default:
		panic("unknown strategy " + s.String())
	}

	t.Total = time.Since(start)
	t.Fill = t.Total
	return t
}

func fillSequential(b *Bitmap) {
	for y := range b.Size {
		for x := range b.Size {
			b.WritePixel(x, y)
		}
	}
}

func fillNested(b *Bitmap, workers int) {
	ParallelFor(b.Size, workers, func(y int) {
		ParallelFor(b.Size, workers, func(x int) {
			b.WritePixel(x, y)
		})
	})
}

func fillFlat(b *Bitmap, workers int) {
	ParallelFor(b.Pixels(), workers, b.WriteIndex)
}

func fillThreads(b *Bitmap, p Partition) (create, fill time.Duration) {
	return runThreads(p, b.WriteRange)
}

// runThreads creates one Thread per chunk of p, then starts them, handles
// the tail on the calling goroutine, and joins all threads. It returns the
// time spent creating the threads and the time spent in the remaining
// steps separately.
func runThreads(p Partition, work func(Range)) (create, fill time.Duration) {
	start := time.Now()
	threads := make([]*Thread, p.Workers)
	for k := range threads {
		chunk := p.Chunk(k)
		threads[k] = NewThread(func() {
			work(chunk)
		})
	}
	create = time.Since(start)

	start = time.Now()
	for _, t := range threads {
		t.Start()
	}
	work(p.Tail())
	for _, t := range threads {
		t.Join()
	}
	fill = time.Since(start)

	return create, fill
}
