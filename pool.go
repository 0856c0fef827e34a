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
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ParallelFor calls body(i) for every i in [0, n), using a pool of
// workers goroutines. Each pool goroutine repeatedly claims the next
// unprocessed index, so the order in which indices are visited is not
// defined. ParallelFor returns once all calls to body have returned.
//
// Different calls to body run concurrently and must not write to
// overlapping memory. ParallelFor panics if workers < 1.
func ParallelFor(n, workers int, body func(i int)) {
	if workers < 1 {
		panic("threading: ParallelFor needs at least one worker")
	}

	var next atomic.Int64
	var g errgroup.Group
	for range min(workers, n) {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				body(i)
			}
		})
	}
	g.Wait() // body cannot fail
}

// fillChunks runs the partition of b over a pool limited to
// p.Workers goroutines.
func fillChunks(b *Bitmap, p Partition) {
	runChunks(p, b.WriteRange)
}

// runChunks calls work once for every chunk of p, on a pool limited to
// p.Workers goroutines. The tail is handled by the caller after all
// chunks have been dispatched and before waiting for them.
func runChunks(p Partition, work func(Range)) {
	var g errgroup.Group
	g.SetLimit(p.Workers)
	for k := range p.Workers {
		chunk := p.Chunk(k)
		g.Go(func() error {
			work(chunk)
			return nil
		})
	}
	work(p.Tail())
	g.Wait()
}
