// Package workers runs the periodic background jobs of the file keeper:
// the import garbage collector and the bulk pin-state refresh.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
