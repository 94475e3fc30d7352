package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/greenstamp/greenstamp/internal/model"
)

// PDFAdapter extracts text from PDF documents page by page. Each page's
// recognized text is appended with a trailing newline; page order is
// preserved.
type PDFAdapter struct {
	tempDir string
}

// NewPDFAdapter creates a new PDF adapter with a scratch directory for
// pdfcpu processing
func NewPDFAdapter() *PDFAdapter {
	tempDir := filepath.Join(os.TempDir(), "greenstamp-pdf")
	os.MkdirAll(tempDir, 0o755)
	return &PDFAdapter{tempDir: tempDir}
}

func (a *PDFAdapter) Name() string { return "pdf" }

func (a *PDFAdapter) CanHandle(kind model.DocumentKind) bool {
	return kind == model.KindPDF
}

func (a *PDFAdapter) Extract(_ context.Context, data []byte) (model.ExtractedText, error) {
	// pdfcpu works on files, so stage the bytes in the scratch dir
	tempFile, err := os.CreateTemp(a.tempDir, "extract_*.pdf")
	if err != nil {
		return "", fmt.Errorf("stage temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(tempPath)
	if err != nil {
		return "", fmt.Errorf("read PDF: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir, err := os.MkdirTemp(a.tempDir, "pages_")
	if err != nil {
		return "", fmt.Errorf("stage page dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	conf := pdfmodel.NewDefaultConfiguration()
	if err := api.ExtractContentFile(tempPath, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("extract PDF content: %w", err)
	}

	// pdfcpu writes one content file per page; read them back in page order
	pageTexts := make(map[int]string)
	files, _ := os.ReadDir(outDir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		} else if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		}
	}

	var text strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		text.WriteString(pageTexts[pageNum])
		text.WriteString("\n")
	}

	return model.ExtractedText(text.String()), nil
}
