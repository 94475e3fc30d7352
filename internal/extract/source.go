// Package extract normalizes input documents into raw text. Format
// adapters handle page-image/markup formats; plain text passes through
// untouched. This is the only pipeline stage with an I/O side effect.
package extract

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Adapter converts one document format into extracted text
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter handles the given kind
	CanHandle(kind model.DocumentKind) bool

	// Extract turns raw bytes into text
	Extract(ctx context.Context, data []byte) (model.ExtractedText, error)
}

// Source dispatches documents to format adapters
type Source struct {
	adapters []Adapter
	fallback Adapter
}

// NewSource creates a source with the built-in adapters registered and
// plain text as the fallback
func NewSource() *Source {
	s := &Source{}
	s.Register(NewPDFAdapter())
	s.Register(NewHTMLAdapter())
	s.fallback = NewPlainTextAdapter()
	return s
}

// Register registers an additional format adapter
func (s *Source) Register(a Adapter) {
	s.adapters = append(s.adapters, a)
}

// Extract normalizes a document into text, selecting the adapter by the
// document's declared kind (falling back to a content sniff when the kind
// is unset). Failures are ExtractionErrors.
func (s *Source) Extract(ctx context.Context, doc model.Document) (model.ExtractedText, error) {
	data := doc.Content
	source := doc.Name
	if source == "" {
		source = doc.Path
	}

	if len(data) == 0 && doc.Path != "" {
		var err error
		data, err = os.ReadFile(doc.Path)
		if err != nil {
			return "", &model.ExtractionError{Source: doc.Path, Err: err}
		}
	}

	kind := doc.Kind
	if kind == "" {
		kind = DetectKind(source, data)
	}

	adapter := s.fallback
	for _, a := range s.adapters {
		if a.CanHandle(kind) {
			adapter = a
			break
		}
	}

	text, err := adapter.Extract(ctx, data)
	if err != nil {
		if _, ok := err.(*model.ExtractionError); ok {
			return "", err
		}
		return "", &model.ExtractionError{Source: source, Err: err}
	}
	return text, nil
}

// ExtractFile normalizes a document stored on disk
func (s *Source) ExtractFile(ctx context.Context, path string) (model.ExtractedText, error) {
	return s.Extract(ctx, model.Document{Path: path, Name: filepath.Base(path)})
}

// DetectKind infers a document kind from the filename extension, then
// from the leading bytes
func DetectKind(name string, data []byte) model.DocumentKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return model.KindPDF
	case ".html", ".htm":
		return model.KindHTML
	case ".txt", ".md", ".text":
		return model.KindPlainText
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return model.KindPDF
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")) || bytes.HasPrefix(trimmed, []byte("<html")) {
		return model.KindHTML
	}
	return model.KindPlainText
}
