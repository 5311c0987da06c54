// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutine and stop
// once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// lockSweeper is the part of the lock service the sweeper needs.
type lockSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}
