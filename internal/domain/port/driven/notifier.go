package driven

import "context"

// Notifier defines the driven port for the outcome report channel. Delivery
// is fire-and-forget from the core's perspective: the caller logs a returned
// error and never propagates it.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
