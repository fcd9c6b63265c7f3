package prompts

import "context"

// Store holds the default instruction template applied when a request
// carries no prompt of its own.
type Store interface {
	// Current returns the active template text; empty when no template is
	// configured.
	Current() string
	// Watch reloads the template whenever its file changes, until ctx is
	// cancelled.
	Watch(ctx context.Context) error
	Stop() error
}
