package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/greenstamp/greenstamp/internal/model"
)

// MockAnalyzer implements Analyzer interface
type MockAnalyzer struct {
	ShouldError bool
}

func (m *MockAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("analyze error")
	}
	return &model.AnalysisResult{
		Summary: "Summary for " + path,
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	paths := []string{"a.txt", "b.pdf", "c.html"}
	ctx := context.Background()

	results := processor.ProcessPaths(ctx, paths)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Analysis == nil {
				t.Error("expected analysis for successful job")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessPaths_Error(t *testing.T) {
	analyzer := &MockAnalyzer{ShouldError: true}
	processor := NewBatchProcessor(analyzer, 2)

	results := processor.ProcessPaths(context.Background(), []string{"a.txt"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Analysis != nil {
		t.Error("expected nil analysis on error")
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results := processor.ProcessPaths(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	content := `reports/2023.pdf
# comment
reports/2024.pdf

notes.txt   `

	tmpfile, err := os.CreateTemp("", "paths")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	expected := []string{"reports/2023.pdf", "reports/2024.pdf", "notes.txt"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d", len(expected), len(paths))
	}

	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("expected path %s at index %d, got %s", expected[i], i, path)
		}
	}
}

func TestReadPathsFromFile_NonExistent(t *testing.T) {
	_, err := ReadPathsFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestAnalyzeResult_Err(t *testing.T) {
	r1 := &AnalyzeResult{Path: "a.txt", Error: nil}
	if r1.Err() != nil {
		t.Errorf("expected nil error, got %v", r1.Err())
	}

	expected := errors.New("analyze failed")
	r2 := &AnalyzeResult{Path: "a.txt", Error: expected}
	if r2.Err() != expected {
		t.Errorf("expected %v, got %v", expected, r2.Err())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "a.txt\nb.pdf\n# comment\n\nc.html\n"

	tmpfile, err := os.CreateTemp("", "batch_paths")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "empty_paths")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results for empty file, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.txt":        "alpha",
		"b.pdf":        "beta",
		"sub/c.html":   "gamma",
		"notes.json":   "skipped",
		"sub/d.docx":   "skipped",
		"sub/deep.TXT": "delta",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	processor := NewBatchProcessor(&MockAnalyzer{}, 2)
	results, err := processor.ProcessDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProcessDir failed: %v", err)
	}

	// a.txt, b.pdf, sub/c.html, sub/deep.TXT; json and docx skipped
	if len(results) != 4 {
		t.Errorf("expected 4 results, got %d", len(results))
	}
}

func TestCollectPaths_MissingDir(t *testing.T) {
	if _, err := CollectPaths("no_such_dir"); err == nil {
		t.Error("expected error for missing directory, got nil")
	}
}

func TestReadPathsFromFile_Deduplication(t *testing.T) {
	content := `reports/2023.pdf
reports/2023.pdf`

	tmpfile, err := os.CreateTemp("", "paths_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	if len(paths) != 1 {
		t.Errorf("expected 1 path after deduplication, got %d", len(paths))
	}
}
