package analyze

import (
	"context"
	"fmt"
	"strings"

	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/knowledge"
	"github.com/greenstamp/greenstamp/internal/model"
)

// complianceThreshold accepts only answers scoring strictly above it.
// Below-threshold or ambiguous answers are silently dropped: the
// requirement lands in neither list, and downstream reconciliation
// rebuilds the "partial" bucket by set subtraction.
const complianceThreshold = 0.8

// ComplianceAnalyzer poses one yes/no question per requirement item in
// the knowledge base against the full text
type ComplianceAnalyzer struct {
	engine   inference.QuestionAnswerer
	base     *knowledge.Base
	provider string
}

// NewComplianceAnalyzer creates the compliance stage
func NewComplianceAnalyzer(engine inference.QuestionAnswerer, base *knowledge.Base, provider string) *ComplianceAnalyzer {
	return &ComplianceAnalyzer{engine: engine, base: base, provider: provider}
}

// Analyze checks every (framework, requirement item) pair. A confident
// "yes" marks the standard met, a confident "no" marks it violated with
// a gap recommendation; the same standard can never land in both lists.
func (a *ComplianceAnalyzer) Analyze(ctx context.Context, text model.ExtractedText) (model.ComplianceResult, error) {
	result := model.ComplianceResult{
		StandardsMet:        []string{},
		PotentialViolations: []string{},
		Recommendations:     []string{},
	}

	for _, fw := range a.base.Frameworks() {
		for _, req := range fw.Requirements {
			for _, item := range req.Items {
				question := fmt.Sprintf("Does the text comply with %s %s?", fw.ID, item)
				answer, err := a.engine.Answer(ctx, question, string(text))
				if err != nil {
					return model.ComplianceResult{}, &model.InferenceError{Stage: "compliance", Provider: a.provider, Err: err}
				}

				if answer.Score <= complianceThreshold {
					continue
				}

				standard := knowledge.Standard(fw.ID, item)
				answerText := strings.ToLower(answer.Text)
				switch {
				case strings.Contains(answerText, "yes"):
					result.StandardsMet = append(result.StandardsMet, standard)
				case strings.Contains(answerText, "no"):
					result.PotentialViolations = append(result.PotentialViolations, standard)
					result.Recommendations = append(result.Recommendations, "Address compliance gap in: "+standard)
				}
			}
		}
	}

	return result, nil
}
