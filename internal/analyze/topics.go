package analyze

import (
	"context"
	"strings"

	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/model"
)

// topicThreshold keeps only labels scoring strictly above it
const topicThreshold = 0.5

// topicLabels is the fixed candidate list scored on every run
var topicLabels = []string{
	"environmental impact",
	"climate change",
	"resource management",
	"social responsibility",
	"employee welfare",
	"community engagement",
	"corporate governance",
	"business ethics",
	"risk management",
}

// Keyword sets bucketing kept labels; a label matching neither set falls
// through to governance
var (
	topicEnvKeywords    = []string{"environmental", "climate", "resource"}
	topicSocialKeywords = []string{"social", "employee", "community"}
)

// TopicClassifier scores the text against the nine fixed ESG topics,
// multi-label, and buckets the survivors
type TopicClassifier struct {
	engine   inference.ZeroShotClassifier
	provider string
}

// NewTopicClassifier creates the topic stage
func NewTopicClassifier(engine inference.ZeroShotClassifier, provider string) *TopicClassifier {
	return &TopicClassifier{engine: engine, provider: provider}
}

// Classify buckets topic labels scoring above the threshold
func (c *TopicClassifier) Classify(ctx context.Context, text model.ExtractedText) (model.TopicResult, error) {
	scored, err := c.engine.ClassifyLabels(ctx, string(text), topicLabels)
	if err != nil {
		return model.TopicResult{}, &model.InferenceError{Stage: "topics", Provider: c.provider, Err: err}
	}

	result := model.TopicResult{
		Environmental: []model.LabeledScore{},
		Social:        []model.LabeledScore{},
		Governance:    []model.LabeledScore{},
	}

	for _, ls := range scored {
		if ls.Score <= topicThreshold {
			continue
		}
		switch {
		case containsAny(ls.Label, topicEnvKeywords):
			result.Environmental = append(result.Environmental, ls)
		case containsAny(ls.Label, topicSocialKeywords):
			result.Social = append(result.Social, ls)
		default:
			result.Governance = append(result.Governance, ls)
		}
	}

	return result, nil
}

func containsAny(label string, keywords []string) bool {
	lower := strings.ToLower(label)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
