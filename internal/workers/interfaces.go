// Package workers provides abstractions for managing and running
// background workers of the LMS client.
// It defines the Worker interface, a Workers aggregate that runs several
// workers in a unified way, a periodic Job and the cache cleaner run at
// startup.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that performs one pass of the worker's
// job.
//
// Implementations are expected to block for the duration of their work
// and return when it is done or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // one pass of background processing
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
