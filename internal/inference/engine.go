// Package inference defines the black-box contracts the analysis stages
// consume and the providers that implement them. Model selection, weights
// and inference runtime live behind these interfaces; the stages only see
// scores and labels.
package inference

import (
	"context"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Summarizer produces one abstractive condensation of a text.
// Deterministic best effort: no sampling, identical input should yield
// identical output for a fixed engine snapshot.
type Summarizer interface {
	Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error)
}

// SentimentClassifier scores a text with a single sentiment label
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (model.LabeledScore, error)
}

// ZeroShotClassifier scores a text against candidate labels. Multi-label:
// each returned score is an independent confidence in [0,1], not part of
// a distribution.
type ZeroShotClassifier interface {
	ClassifyLabels(ctx context.Context, text string, labels []string) ([]model.LabeledScore, error)
}

// QuestionAnswerer answers a question against a context text
type QuestionAnswerer interface {
	Answer(ctx context.Context, question, contextText string) (model.Answer, error)
}

// Generator produces free-form conversational text. Only the chatbot uses
// it, and only after lazy initialization.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine bundles every inference capability one provider exposes
type Engine interface {
	Summarizer
	SentimentClassifier
	ZeroShotClassifier
	QuestionAnswerer
	Generator

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Sentiment labels shared by all providers
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
