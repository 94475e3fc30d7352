package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Analyzer defines the interface for analyzing a single document file
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error)
}

// AnalyzeJob represents a single-document analysis job
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Run analyzes the job's document
func (j *AnalyzeJob) Run(ctx context.Context) Outcome {
	result, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}
	return &AnalyzeResult{Path: j.Path, Analysis: result}
}

// AnalyzeResult represents the result of an analysis job
type AnalyzeResult struct {
	Path     string
	Analysis *model.AnalysisResult
	Error    error
}

// Err returns the error from the analysis result
func (r *AnalyzeResult) Err() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes multiple document paths concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	tasks := make([]Task, len(paths))
	for i, path := range paths {
		tasks[i] = &AnalyzeJob{Path: path, Analyzer: b.analyzer}
	}

	outcomes := NewPool(b.concurrency).Run(ctx, tasks)

	analyzeResults := make([]*AnalyzeResult, len(outcomes))
	for i, outcome := range outcomes {
		analyzeResults[i] = outcome.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads document paths from a list file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ProcessDir walks a directory tree and analyzes every supported document
func (b *BatchProcessor) ProcessDir(ctx context.Context, root string) ([]*AnalyzeResult, error) {
	paths, err := CollectPaths(root)
	if err != nil {
		return nil, fmt.Errorf("collect paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// supportedExtensions mirrors the formats the extraction adapters handle
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".html": true,
	".htm":  true,
	".txt":  true,
	".md":   true,
	".text": true,
}

// CollectPaths walks root and returns every document with a supported
// extension, in lexical walk order
func CollectPaths(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// ReadPathsFromFile reads document paths from a file (one per line)
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate paths
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
