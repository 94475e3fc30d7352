package model

// DocumentKind declares how a document's bytes should be turned into text
type DocumentKind string

const (
	KindPlainText DocumentKind = "text" // Decoded as UTF-8, no transformation
	KindHTML      DocumentKind = "html" // Visible text extracted from markup
	KindPDF       DocumentKind = "pdf"  // Per-page content extraction, page order preserved
)

// Document references raw report bytes plus a declared kind.
// Constructed by the caller, consumed once by the text source adapter.
type Document struct {
	Path    string       `json:"path,omitempty"`    // File path, if the document lives on disk
	Content []byte       `json:"-"`                 // Raw bytes, if supplied inline
	Kind    DocumentKind `json:"kind"`              // How to extract text
	Name    string       `json:"name,omitempty"`    // Original filename for logs
}

// ExtractedText is the concatenation of all pages/segments in source order.
// Page separators are preserved as newlines so downstream sentence
// splitting stays stable.
type ExtractedText string
