package analyze

import (
	"context"
	"errors"

	"github.com/greenstamp/greenstamp/internal/model"
)

// fakeEngine implements the inference interfaces with canned outputs
type fakeEngine struct {
	summary     string
	sentiments  map[string]model.LabeledScore
	labelScores map[string]float64
	answers     map[string]model.Answer
	err         error
}

func (f *fakeEngine) Summarize(_ context.Context, _ string, _, _ int) (string, error) {
	return f.summary, f.err
}

func (f *fakeEngine) ClassifySentiment(_ context.Context, text string) (model.LabeledScore, error) {
	if f.err != nil {
		return model.LabeledScore{}, f.err
	}
	if ls, ok := f.sentiments[text]; ok {
		return ls, nil
	}
	return model.LabeledScore{Label: "POSITIVE", Score: 0.5}, nil
}

func (f *fakeEngine) ClassifyLabels(_ context.Context, _ string, labels []string) ([]model.LabeledScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.LabeledScore, 0, len(labels))
	for _, label := range labels {
		out = append(out, model.LabeledScore{Label: label, Score: f.labelScores[label]})
	}
	return out, nil
}

func (f *fakeEngine) Answer(_ context.Context, question, _ string) (model.Answer, error) {
	if f.err != nil {
		return model.Answer{}, f.err
	}
	if a, ok := f.answers[question]; ok {
		return a, nil
	}
	return model.Answer{Text: "unclear", Score: 0.3}, nil
}

var errEngineDown = errors.New("engine unavailable")
