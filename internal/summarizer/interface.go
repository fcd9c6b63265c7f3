package summarizer

import "context"

// Summarizer turns a meeting transcript plus an optional instruction prompt
// into an LLM-generated markdown summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, prompt string) (string, error)
}
