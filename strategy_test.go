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
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestStrategiesIdentical checks that every strategy produces exactly the
// same bytes as the sequential loop.
func TestStrategiesIdentical(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 7, 64, 129}
	workerCounts := []int{1, 2, 3, 8, 17}

	for _, size := range sizes {
		ref := NewBitmap(size)
		Fill(Sequential, ref, 1)

		for _, workers := range workerCounts {
			for _, s := range Strategies {
				t.Run(fmt.Sprintf("%s_%d_%d", s, size, workers), func(t *testing.T) {
					b := NewBitmap(size)
					Fill(s, b, workers)
					if !b.Equal(ref) {
						t.Errorf("output differs from sequential reference")
					}
				})
			}
		}
	}
}

// TestStrategiesOverwrite checks that a strategy rewrites every byte,
// independent of the previous buffer contents.
func TestStrategiesOverwrite(t *testing.T) {
	ref := NewBitmap(33)
	Fill(Sequential, ref, 1)

	for _, s := range Strategies {
		b := NewBitmap(33)
		for i := range b.Pix {
			b.Pix[i] = 0xAA
		}
		Fill(s, b, 4)
		if !b.Equal(ref) {
			t.Errorf("%s: stale bytes left in buffer", s)
		}
	}
}

func TestTimings(t *testing.T) {
	for _, s := range Strategies {
		b := NewBitmap(32)
		timing := Fill(s, b, 3)
		if timing.Strategy != s {
			t.Errorf("%s: timing reports strategy %s", s, timing.Strategy)
		}
		if timing.Fill > timing.Total {
			t.Errorf("%s: fill time %v exceeds total %v", s, timing.Fill, timing.Total)
		}
		if s != Threads && timing.Create != 0 {
			t.Errorf("%s: unexpected creation time %v", s, timing.Create)
		}
	}
}

// TestThreadsCreationSeparate verifies that thread creation is measured
// separately from the fill, and that both are part of the total.
func TestThreadsCreationSeparate(t *testing.T) {
	b := NewBitmap(16)
	timing := Fill(Threads, b, 4)
	if timing.Create <= 0 {
		t.Errorf("creation time not recorded: %v", timing.Create)
	}
	if timing.Create+timing.Fill > timing.Total {
		t.Errorf("create %v + fill %v exceeds total %v", timing.Create, timing.Fill, timing.Total)
	}
}

func TestStrategyString(t *testing.T) {
	want := []string{"sequential", "nested", "flat", "chunked", "threads"}
	for i, s := range Strategies {
		if s.String() != want[i] {
			t.Errorf("got %q, want %q", s.String(), want[i])
		}
	}
	if got := Strategy(42).String(); got != "Strategy(42)" {
		t.Errorf("got %q for unknown strategy", got)
	}
}

// TestZeroWorkersPanics checks that no parallel strategy silently returns
// an unfilled bitmap when it is given no workers.
func TestZeroWorkersPanics(t *testing.T) {
	for _, s := range Strategies {
		if s == Sequential {
			continue
		}
		t.Run(s.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			Fill(s, NewBitmap(4), 0)
		})
	}
}
