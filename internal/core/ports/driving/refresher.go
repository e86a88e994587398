package driving

import "context"

// Refresher keeps the token set fresh in the background (serve mode).
type Refresher interface {
	// Start begins the periodic refresh loop.
	// Blocks until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the loop and waits for an in-flight refresh.
	Stop() error
}
