package analyze

import (
	"context"

	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/model"
)

// riskThreshold keeps only labels scoring strictly above it
const riskThreshold = 0.6

// riskLabels is the fixed candidate list for risk identification
var riskLabels = []string{
	"climate transition risks",
	"environmental compliance risks",
	"human rights risks",
	"social license risks",
	"governance failure risks",
	"regulatory compliance risks",
}

var (
	riskEnvKeywords    = []string{"climate", "environmental"}
	riskSocialKeywords = []string{"human", "social"}
)

// RiskIdentifier scores the text against the six fixed risk categories
// and buckets the survivors. The opportunities bucket exists in the
// schema but the current rule never routes a label into it.
type RiskIdentifier struct {
	engine   inference.ZeroShotClassifier
	provider string
}

// NewRiskIdentifier creates the risk stage
func NewRiskIdentifier(engine inference.ZeroShotClassifier, provider string) *RiskIdentifier {
	return &RiskIdentifier{engine: engine, provider: provider}
}

// Identify buckets risk labels scoring above the threshold
func (r *RiskIdentifier) Identify(ctx context.Context, text model.ExtractedText) (model.RiskResult, error) {
	scored, err := r.engine.ClassifyLabels(ctx, string(text), riskLabels)
	if err != nil {
		return model.RiskResult{}, &model.InferenceError{Stage: "risks", Provider: r.provider, Err: err}
	}

	result := model.RiskResult{
		Environmental: []model.LabeledScore{},
		Social:        []model.LabeledScore{},
		Governance:    []model.LabeledScore{},
		Opportunities: []model.LabeledScore{},
	}

	for _, ls := range scored {
		if ls.Score <= riskThreshold {
			continue
		}
		switch {
		case containsAny(ls.Label, riskEnvKeywords):
			result.Environmental = append(result.Environmental, ls)
		case containsAny(ls.Label, riskSocialKeywords):
			result.Social = append(result.Social, ls)
		default:
			result.Governance = append(result.Governance, ls)
		}
	}

	return result, nil
}
