package core

import "context"

// Worker is the background process of a module. The run command starts it unless
// the service runs in API-only mode.
type Worker interface {
	Run(ctx context.Context) error
}

const Version = "v0.1.0"
