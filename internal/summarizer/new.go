package summarizer

import (
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/logger"
)

type implSummarizer struct {
	apiKey          string
	model           string
	maxOutputTokens int
	logger          logger.Logger
}

// New creates a Summarizer backed by the Gemini API.
func New(apiKey, model string, maxOutputTokens int, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKey:          apiKey,
		model:           model,
		maxOutputTokens: maxOutputTokens,
		logger:          log,
	}
}
