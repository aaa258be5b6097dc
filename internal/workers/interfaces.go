// Package workers runs the background jobs of the server next to the HTTP
// listener.
//
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the shared context is cancelled or one of them fails.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is done and returns nil in that case. A non-nil
// error stops the other workers of the same [Workers].
type Worker interface {
	Run(ctx context.Context) error
}
