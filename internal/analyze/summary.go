// Package analyze implements the six pipeline stages. Each stage wraps
// one inference capability and post-processes its raw output into a
// thresholded, domain-meaningful result. Stages are stateless per call
// and independent of one another.
package analyze

import (
	"context"

	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/model"
)

// Caller-facing length bounds for generated summaries
const (
	SummaryMinLength = 30
	SummaryMaxLength = 130
)

// Summarizer produces one abstractive condensation of the full text
type Summarizer struct {
	engine   inference.Summarizer
	provider string
}

// NewSummarizer creates the summary stage
func NewSummarizer(engine inference.Summarizer, provider string) *Summarizer {
	return &Summarizer{engine: engine, provider: provider}
}

// Summarize condenses the text within the fixed length bounds
func (s *Summarizer) Summarize(ctx context.Context, text model.ExtractedText) (string, error) {
	summary, err := s.engine.Summarize(ctx, string(text), SummaryMinLength, SummaryMaxLength)
	if err != nil {
		return "", &model.InferenceError{Stage: "summary", Provider: s.provider, Err: err}
	}
	return summary, nil
}
