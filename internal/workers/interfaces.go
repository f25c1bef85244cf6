// Package workers runs the long-lived background routines of the client
// under one context.
//
// Every routine implements Worker. Workers starts them together and stops
// them together: the first worker that fails cancels the others, and
// cancelling the parent context stops all of them.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker can no longer continue.
// A worker that stops because ctx ended returns nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Job is a ticker-driven routine that manages its own goroutine.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
