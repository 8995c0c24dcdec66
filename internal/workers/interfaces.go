// Package workers runs the one-shot startup jobs of the terminal client:
// closing out a capture left behind by a crashed run and comparing the
// client build against the server version.
package workers

import "context"

// Worker is a startup job. Run blocks until the job is done.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// Recoverer closes out a journaled capture; see
// service.ClientCaptureService.
type Recoverer interface {
	Recover(ctx context.Context) (bool, error)
}

// VersionSource reports the server build version.
type VersionSource interface {
	ServerVersion(ctx context.Context) (string, error)
}
