package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/greenstamp/greenstamp/internal/model"
)

// KeywordEngine is a deterministic lexicon-backed engine. It calls no
// network, always returns the same output for the same input, and is the
// default provider so the binary works with no credentials. It is also
// the fixed-engine snapshot the idempotence guarantees are tested
// against.
type KeywordEngine struct {
	positive []string
	negative []string
}

// NewKeywordEngine creates a new keyword engine
func NewKeywordEngine() *KeywordEngine {
	return &KeywordEngine{
		positive: []string{
			"improved", "achieved", "reduced", "progress", "exceeded",
			"renewable", "efficient", "strong", "success", "committed",
		},
		negative: []string{
			"failed", "violation", "incident", "decline", "penalty",
			"pollution", "spill", "fine", "weak", "missed",
		},
	}
}

// Name returns the provider name
func (e *KeywordEngine) Name() string { return "keyword" }

// IsAvailable always reports true: there is nothing remote to reach
func (e *KeywordEngine) IsAvailable(_ context.Context) bool { return true }

// Summarize takes leading sentences until the word count reaches minLen,
// then stops before exceeding maxLen
func (e *KeywordEngine) Summarize(_ context.Context, text string, minLen, maxLen int) (string, error) {
	sentences := strings.Split(text, ".")

	var parts []string
	words := 0
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n := len(strings.Fields(s))
		if words >= minLen && words+n > maxLen {
			break
		}
		parts = append(parts, s)
		words += n
		if words >= maxLen {
			break
		}
	}

	if len(parts) == 0 {
		return "", nil
	}

	summary := strings.Join(parts, ". ") + "."
	fields := strings.Fields(summary)
	if len(fields) > maxLen {
		summary = strings.Join(fields[:maxLen], " ")
	}
	return summary, nil
}

// ClassifySentiment counts lexicon hits: more negative hits than positive
// flips the label, the margin sets the confidence
func (e *KeywordEngine) ClassifySentiment(_ context.Context, text string) (model.LabeledScore, error) {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range e.positive {
		pos += strings.Count(lower, w)
	}
	for _, w := range e.negative {
		neg += strings.Count(lower, w)
	}

	if pos == 0 && neg == 0 {
		return model.LabeledScore{Label: LabelPositive, Score: 0.5}, nil
	}

	total := float64(pos + neg)
	margin := float64(pos-neg) / total
	if margin < 0 {
		margin = -margin
	}
	score := clamp01(0.5 + 0.5*margin)

	label := LabelPositive
	if neg > pos {
		label = LabelNegative
	}
	return model.LabeledScore{Label: label, Score: score}, nil
}

// ClassifyLabels scores each label by word overlap with the text; a whole
// phrase match scores highest
func (e *KeywordEngine) ClassifyLabels(_ context.Context, text string, labels []string) ([]model.LabeledScore, error) {
	lower := strings.ToLower(text)

	out := make([]model.LabeledScore, 0, len(labels))
	for _, label := range labels {
		score := 0.0
		if strings.Contains(lower, strings.ToLower(label)) {
			score = 0.95
		} else {
			words := significantWords(label)
			if len(words) > 0 {
				matched := 0
				for _, w := range words {
					if strings.Contains(lower, w) {
						matched++
					}
				}
				score = 0.9 * float64(matched) / float64(len(words))
			}
		}
		out = append(out, model.LabeledScore{Label: label, Score: score})
	}
	return out, nil
}

// Answer checks what fraction of the question's significant words appear
// in the context. Full coverage is a confident yes, zero coverage a
// confident no, anything between stays deliberately below the compliance
// acceptance threshold.
func (e *KeywordEngine) Answer(_ context.Context, question, contextText string) (model.Answer, error) {
	lower := strings.ToLower(contextText)

	words := significantWords(question)
	if len(words) == 0 {
		return model.Answer{Text: "unclear", Score: 0.0}, nil
	}

	matched := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(words))

	switch {
	case ratio >= 0.75:
		return model.Answer{Text: "yes", Score: clamp01(0.85 + 0.15*ratio)}, nil
	case ratio == 0:
		return model.Answer{Text: "no", Score: 0.85}, nil
	default:
		return model.Answer{Text: "unclear", Score: 0.4 + 0.2*ratio}, nil
	}
}

// Generate returns a fixed, deterministic reply
func (e *KeywordEngine) Generate(_ context.Context, prompt string) (string, error) {
	topic := "your question"
	if words := significantWords(prompt); len(words) > 0 {
		topic = strings.Join(words[:min(3, len(words))], ", ")
	}
	return fmt.Sprintf("I can help with ESG reporting and compliance topics. Regarding %s: please consult the supported frameworks (GRI, SASB, TCFD) or ask about a specific requirement.", topic), nil
}

// questionStopwords covers the boilerplate of compliance questions so
// only requirement terms count toward coverage
var questionStopwords = map[string]bool{
	"does": true, "text": true, "with": true, "comply": true,
	"report": true, "requirement": true, "this": true, "that": true,
	"what": true, "which": true, "should": true, "about": true,
	"have": true, "from": true, "into": true, "their": true,
	// Framework ids are boilerplate in compliance questions, not
	// content to look for in the report text
	"sasb": true, "tcfd": true,
}

func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?\"'()")
		if len(w) < 4 || questionStopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}
