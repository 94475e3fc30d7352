package analyze

import (
	"context"
	"strings"

	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/model"
)

// SentimentAnalyzer scores the whole text once, then every non-empty
// sentence in source order
type SentimentAnalyzer struct {
	engine   inference.SentimentClassifier
	provider string
}

// NewSentimentAnalyzer creates the sentiment stage
func NewSentimentAnalyzer(engine inference.SentimentClassifier, provider string) *SentimentAnalyzer {
	return &SentimentAnalyzer{engine: engine, provider: provider}
}

// Analyze produces the overall and sentence-level sentiment
func (a *SentimentAnalyzer) Analyze(ctx context.Context, text model.ExtractedText) (model.SentimentResult, error) {
	overall, err := a.engine.ClassifySentiment(ctx, string(text))
	if err != nil {
		return model.SentimentResult{}, &model.InferenceError{Stage: "sentiment", Provider: a.provider, Err: err}
	}

	sentences := SplitSentences(string(text))
	sentenceLevel := make([]model.LabeledScore, 0, len(sentences))
	for _, sentence := range sentences {
		ls, err := a.engine.ClassifySentiment(ctx, sentence)
		if err != nil {
			return model.SentimentResult{}, &model.InferenceError{Stage: "sentiment", Provider: a.provider, Err: err}
		}
		sentenceLevel = append(sentenceLevel, ls)
	}

	return model.SentimentResult{
		Overall:       overall,
		SentenceLevel: sentenceLevel,
	}, nil
}

// SplitSentences is the simplest possible rule: split on '.', drop
// empty and whitespace-only fragments
func SplitSentences(text string) []string {
	parts := strings.Split(text, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
