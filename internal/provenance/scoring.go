// Package provenance implements the disconnected report-registry
// variant: greenwashing scoring, content hashing, an append-only ledger
// abstraction and a mock report store.
package provenance

import (
	"context"
	"strings"

	"github.com/greenstamp/greenstamp/internal/analyze"
	"github.com/greenstamp/greenstamp/internal/inference"
)

// greenwashingIndicators flag sentences making sustainability claims.
// Only claims delivered with negative sentiment count against the score.
var greenwashingIndicators = []string{
	"sustainable", "green", "eco-friendly", "environmentally friendly",
	"carbon neutral", "net zero", "renewable", "clean energy",
}

// requiredDisclosures are checked as literal, case-insensitive
// substrings of the report text
var requiredDisclosures = []string{
	"carbon emissions",
	"energy consumption",
	"waste management",
	"water usage",
	"employee diversity",
	"community engagement",
	"board composition",
	"executive compensation",
}

// Assessment is the scored view of one report text
type Assessment struct {
	GreenwashingScore  int
	ESGScore           int
	GreenwashingRisk   string
	MissingDisclosures []string
}

// Assessor scores report texts for greenwashing signals
type Assessor struct {
	classifier inference.SentimentClassifier
}

// NewAssessor creates an assessor backed by the given sentiment engine
func NewAssessor(classifier inference.SentimentClassifier) *Assessor {
	return &Assessor{classifier: classifier}
}

// Assess counts indicator sentences with negative sentiment, derives the
// ESG score and risk tier, and lists absent required disclosures
func (a *Assessor) Assess(ctx context.Context, text string) (Assessment, error) {
	score := 0
	for _, sentence := range analyze.SplitSentences(text) {
		if !containsIndicator(strings.ToLower(sentence)) {
			continue
		}
		sentiment, err := a.classifier.ClassifySentiment(ctx, sentence)
		if err != nil {
			return Assessment{}, err
		}
		if sentiment.Label == inference.LabelNegative {
			score++
		}
	}

	return Assessment{
		GreenwashingScore:  score,
		ESGScore:           esgScore(score),
		GreenwashingRisk:   riskTier(score),
		MissingDisclosures: missingDisclosures(text),
	}, nil
}

// esgScore maps the greenwashing count onto a 0-100 score
func esgScore(greenwashingScore int) int {
	score := 85 - greenwashingScore*5
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func riskTier(greenwashingScore int) string {
	switch {
	case greenwashingScore > 5:
		return "High"
	case greenwashingScore > 2:
		return "Medium"
	default:
		return "Low"
	}
}

func missingDisclosures(text string) []string {
	lower := strings.ToLower(text)
	missing := []string{}
	for _, disclosure := range requiredDisclosures {
		if !strings.Contains(lower, disclosure) {
			missing = append(missing, disclosure)
		}
	}
	return missing
}

func containsIndicator(sentence string) bool {
	for _, indicator := range greenwashingIndicators {
		if strings.Contains(sentence, indicator) {
			return true
		}
	}
	return false
}
