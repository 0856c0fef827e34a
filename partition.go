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

// Range is the half-open interval [Start, End) of flattened pixel indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits the index range [0, Total) into Workers contiguous
// chunks of PerWorker indices each. The Leftover indices at the end of
// the range, which integer division cannot distribute, form the tail.
// The tail is processed by the goroutine which dispatched the chunks.
type Partition struct {
	Total     int
	Workers   int
	PerWorker int
	Leftover  int
}

// NewPartition returns the partition of [0, total) into workers chunks.
// workers must be positive.
func NewPartition(total, workers int) Partition {
	perWorker := total / workers
	return Partition{
		Total:     total,
		Workers:   workers,
		PerWorker: perWorker,
		Leftover:  total - perWorker*workers,
	}
}

// Chunk returns the index range of worker k, for 0 <= k < p.Workers.
func (p Partition) Chunk(k int) Range {
	return Range{Start: k * p.PerWorker, End: (k + 1) * p.PerWorker}
}

// Tail returns the leftover indices at the end of the range.
// The result is empty if Total is divisible by Workers.
func (p Partition) Tail() Range {
	return Range{Start: p.Workers * p.PerWorker, End: p.Total}
}

// Ranges returns all worker chunks, followed by the tail.
func (p Partition) Ranges() []Range {
	res := make([]Range, 0, p.Workers+1)
	for k := range p.Workers {
		res = append(res, p.Chunk(k))
	}
	return append(res, p.Tail())
}
