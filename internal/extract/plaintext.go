package extract

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/greenstamp/greenstamp/internal/model"
)

// PlainTextAdapter passes UTF-8 text through with no transformation
type PlainTextAdapter struct{}

// NewPlainTextAdapter creates a new plain text adapter
func NewPlainTextAdapter() *PlainTextAdapter {
	return &PlainTextAdapter{}
}

func (a *PlainTextAdapter) Name() string { return "plaintext" }

func (a *PlainTextAdapter) CanHandle(kind model.DocumentKind) bool {
	return kind == model.KindPlainText
}

func (a *PlainTextAdapter) Extract(_ context.Context, data []byte) (model.ExtractedText, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("content is not valid UTF-8")
	}
	return model.ExtractedText(data), nil
}
