// Package scheduler runs the sync pipeline on a fixed interval.
//
// The scheduler owns a single background goroutine: it fires one run
// immediately on Start, then once per interval until Stop. Runs never
// overlap because the loop is sequential.
package scheduler
