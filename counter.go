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
	"sync"
	"sync/atomic"
)

// Counter is a shared integer which several goroutines increment.
type Counter interface {
	Inc()
	Value() int64
}

// RacyCounter increments its value with a separate read and write.
// Two goroutines which read the same old value both write old+1, so one
// of the increments is lost. The individual loads and stores are atomic,
// so the race is a logic error only and the race detector stays silent.
type RacyCounter struct {
	v atomic.Int64
}

// Inc adds one to the counter, unless another goroutine interferes.
func (c *RacyCounter) Inc() {
	old := c.v.Load()
	c.v.Store(old + 1)
}

// Value returns the current value.
func (c *RacyCounter) Value() int64 {
	return c.v.Load()
}

// LockedCounter protects the read-modify-write cycle with a mutex.
type LockedCounter struct {
	mu sync.Mutex
	v  int64
}

// Inc adds one to the counter.
func (c *LockedCounter) Inc() {
	c.mu.Lock()
	c.v++
	c.mu.Unlock()
}

// Value returns the current value.
func (c *LockedCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// AtomicCounter uses a single atomic add for each increment.
type AtomicCounter struct {
	v atomic.Int64
}

// Inc adds one to the counter.
func (c *AtomicCounter) Inc() {
	c.v.Add(1)
}

// Value returns the current value.
func (c *AtomicCounter) Value() int64 {
	return c.v.Load()
}

// Hammer increments c from the given number of goroutines, each calling
// Inc the given number of times, and returns the final counter value.
// For a correct counter the result is goroutines*increments.
func Hammer(c Counter, goroutines, increments int) int64 {
	var wg sync.WaitGroup
	start := make(chan struct{})
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range increments {
				c.Inc()
			}
		}()
	}
	close(start)
	wg.Wait()
	return c.Value()
}
