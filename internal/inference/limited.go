package inference

import (
	"context"

	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/worker"
)

// LimitedEngine wraps an Engine with a shared rate limiter, keyed by the
// provider name. Remote providers need this; the keyword engine tolerates
// it because the limiter is cheap when tokens are plentiful.
type LimitedEngine struct {
	engine  Engine
	limiter *worker.Limiter
}

// NewLimitedEngine wraps engine with the given limiter
func NewLimitedEngine(engine Engine, limiter *worker.Limiter) *LimitedEngine {
	return &LimitedEngine{engine: engine, limiter: limiter}
}

func (l *LimitedEngine) Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error) {
	if err := l.limiter.Wait(ctx, l.engine.Name()); err != nil {
		return "", err
	}
	return l.engine.Summarize(ctx, text, minLen, maxLen)
}

func (l *LimitedEngine) ClassifySentiment(ctx context.Context, text string) (model.LabeledScore, error) {
	if err := l.limiter.Wait(ctx, l.engine.Name()); err != nil {
		return model.LabeledScore{}, err
	}
	return l.engine.ClassifySentiment(ctx, text)
}

func (l *LimitedEngine) ClassifyLabels(ctx context.Context, text string, labels []string) ([]model.LabeledScore, error) {
	if err := l.limiter.Wait(ctx, l.engine.Name()); err != nil {
		return nil, err
	}
	return l.engine.ClassifyLabels(ctx, text, labels)
}

func (l *LimitedEngine) Answer(ctx context.Context, question, contextText string) (model.Answer, error) {
	if err := l.limiter.Wait(ctx, l.engine.Name()); err != nil {
		return model.Answer{}, err
	}
	return l.engine.Answer(ctx, question, contextText)
}

func (l *LimitedEngine) Generate(ctx context.Context, prompt string) (string, error) {
	if err := l.limiter.Wait(ctx, l.engine.Name()); err != nil {
		return "", err
	}
	return l.engine.Generate(ctx, prompt)
}

func (l *LimitedEngine) Name() string {
	return l.engine.Name()
}

func (l *LimitedEngine) IsAvailable(ctx context.Context) bool {
	return l.engine.IsAvailable(ctx)
}
