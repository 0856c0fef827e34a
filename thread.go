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

import "runtime"

// Thread is a goroutine which is locked to its own OS thread for its
// whole lifetime. It mirrors the life cycle of a classic thread object:
// NewThread creates it, Start lets it run its function, and Join waits
// for the function to finish.
//
// Every Thread must be started and joined, otherwise its goroutine is
// never released.
type Thread struct {
	fn    func()
	id    int
	start chan struct{}
	done  chan struct{}
}

// NewThread creates a new thread which will execute fn once started.
// On return, the underlying goroutine is running, pinned to an OS thread,
// and blocked until Start is called.
func NewThread(fn func()) *Thread {
	t := &Thread{
		fn:    fn,
		start: make(chan struct{}),
		done:  make(chan struct{}),
	}
	ready := make(chan int)
	go t.run(ready)
	t.id = <-ready
	return t
}

func (t *Thread) run(ready chan<- int) {
	// The goroutine exits without unlocking, which makes the Go runtime
	// terminate the OS thread together with the goroutine.
	runtime.LockOSThread()
	defer close(t.done)

	ready <- CurrentThreadID()
	<-t.start
	t.fn()
}

// Start releases the thread. Start must be called exactly once.
func (t *Thread) Start() {
	close(t.start)
}

// Join blocks until the thread's function has returned.
func (t *Thread) Join() {
	<-t.done
}

// ID returns the operating system identifier of the thread, or 0 if the
// platform does not expose one.
func (t *Thread) ID() int {
	return t.id
}
