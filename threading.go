// Package threading contains the building blocks of a walkthrough of
// threads in Go: a synthetic RGB bitmap which can be filled using several
// strategies for spreading the work over goroutines and OS threads, and a
// set of shared counters which demonstrate race conditions.
//
// The fill strategies never share mutable state: every pixel is written
// exactly once, by exactly one goroutine, so no locking is required.
package threading

//go:generate go run ./examples/export
//go:generate go run ./examples/genpdf
