package analyze

import (
	"context"
	"errors"
	"testing"

	"github.com/greenstamp/greenstamp/internal/model"
)

func TestSummarizer(t *testing.T) {
	a := NewSummarizer(&fakeEngine{summary: "The report covers emissions and governance."}, "fake")

	got, err := a.Summarize(context.Background(), "long report text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "The report covers emissions and governance." {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarizer_EngineFailure(t *testing.T) {
	a := NewSummarizer(&fakeEngine{err: errEngineDown}, "fake")

	_, err := a.Summarize(context.Background(), "long report text")
	var infErr *model.InferenceError
	if !errors.As(err, &infErr) {
		t.Fatalf("expected InferenceError, got %v", err)
	}
	if infErr.Stage != "summary" {
		t.Errorf("Stage = %q, want summary", infErr.Stage)
	}
}
