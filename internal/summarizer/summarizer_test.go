package summarizer

import (
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestComposeRequest(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		prompt     string
		want       string
	}{
		{
			name:       "prompt and transcript",
			transcript: "Q: sales up? A: yes",
			prompt:     "Summarize in bullets",
			want:       "Summarize in bullets\n\nTranscript:\nQ: sales up? A: yes",
		},
		{
			name:       "empty prompt",
			transcript: "hello",
			prompt:     "",
			want:       "\n\nTranscript:\nhello",
		},
		{
			name:       "empty transcript",
			transcript: "",
			prompt:     "just answer",
			want:       "just answer\n\nTranscript:\n",
		},
		{
			name:       "both empty still composes",
			transcript: "",
			prompt:     "",
			want:       "\n\nTranscript:\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composeRequest(tt.transcript, tt.prompt); got != tt.want {
				t.Errorf("composeRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name   string
		result *genai.GenerateContentResponse
		want   string
	}{
		{
			name:   "nil response",
			result: nil,
			want:   noSummary,
		},
		{
			name:   "no candidates",
			result: &genai.GenerateContentResponse{},
			want:   noSummary,
		},
		{
			name: "first candidate first part",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "Hello"}}}},
				},
			},
			want: "Hello",
		},
		{
			name: "first part empty falls back to later part",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{}, {Text: "second part"}}}},
				},
			},
			want: "second part",
		},
		{
			name: "first candidate empty falls back to second candidate",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{}},
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "from second"}}}},
				},
			},
			want: "from second",
		},
		{
			name: "candidates with nil content",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}, {}},
			},
			want: noSummary,
		},
		{
			name: "all parts empty",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{}, {}}}},
				},
			},
			want: noSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractSummary(tt.result); got != tt.want {
				t.Errorf("extractSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSummaryNeverReturnsEmpty(t *testing.T) {
	// Whatever the provider sends back, the caller always gets displayable text.
	inputs := []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	}

	for _, in := range inputs {
		if got := extractSummary(in); strings.TrimSpace(got) == "" {
			t.Errorf("extractSummary(%+v) returned empty text", in)
		}
	}
}
