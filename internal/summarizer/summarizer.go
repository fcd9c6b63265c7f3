package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// noSummary is returned when the provider response carries no usable text.
// The request still succeeds; callers display the placeholder as-is.
const noSummary = "No summary generated."

// Summarize composes the prompt and transcript into a single user-role
// request and returns the extracted summary text.
func (s *implSummarizer) Summarize(ctx context.Context, transcript, prompt string) (string, error) {
	request := composeRequest(transcript, prompt)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	var cfg *genai.GenerateContentConfig
	if s.maxOutputTokens > 0 {
		cfg = &genai.GenerateContentConfig{
			MaxOutputTokens: int32(s.maxOutputTokens),
		}
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(request), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return extractSummary(result), nil
}

// composeRequest joins the instruction prompt and the transcript the way the
// UI expects: prompt first, transcript labeled below it. Either part may be
// empty; the composition itself never fails.
func composeRequest(transcript, prompt string) string {
	return fmt.Sprintf("%s\n\nTranscript:\n%s", prompt, transcript)
}

// extractSummary applies the ordered extraction policy to a provider
// response:
//
//  1. the first candidate's first content part's text
//  2. the first non-empty text part anywhere in the response
//  3. the fixed placeholder
//
// A raw provider payload is never surfaced when nothing usable is found.
func extractSummary(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return noSummary
	}

	first := result.Candidates[0]
	if first.Content != nil && len(first.Content.Parts) > 0 && first.Content.Parts[0].Text != "" {
		return first.Content.Parts[0].Text
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}

	return noSummary
}
