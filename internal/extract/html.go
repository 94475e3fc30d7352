package extract

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/greenstamp/greenstamp/internal/model"
)

// HTMLAdapter extracts visible text from markup, skipping scripts and
// styles. Block boundaries become newlines so sentence splitting stays
// stable downstream.
type HTMLAdapter struct{}

// NewHTMLAdapter creates a new HTML adapter
func NewHTMLAdapter() *HTMLAdapter {
	return &HTMLAdapter{}
}

func (a *HTMLAdapter) Name() string { return "html" }

func (a *HTMLAdapter) CanHandle(kind model.DocumentKind) bool {
	return kind == model.KindHTML
}

func (a *HTMLAdapter) Extract(_ context.Context, data []byte) (model.ExtractedText, error) {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return "", err
	}
	return model.ExtractedText(visibleText(doc)), nil
}

// blockElements force a newline when closed, preserving segment order
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// visibleText walks the node tree collecting text nodes, skipping
// script/style/noscript/iframe subtrees
func visibleText(root *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString("\n")
		}
	}

	walk(root)
	return strings.TrimSpace(buf.String())
}
