package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/greenstamp/greenstamp/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON        string
	analyzeTimeout time.Duration
	noCache        bool
	provider       string
	providerModel  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single ESG document",
	Long: `Analyze extracts text from a document (PDF, HTML or plain text) and
runs the full analysis pipeline:
- Summary and sentiment
- ESG topic and risk classification
- Quantitative metric extraction
- GRI/SASB/TCFD compliance checks

Example:
  greenstamp analyze report.pdf
  greenstamp analyze report.pdf --json analysis.json
  greenstamp analyze report.txt --provider openai --model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	analyzeCmd.Flags().StringVar(&provider, "provider", "", "inference provider (keyword, openai, ollama)")
	analyzeCmd.Flags().StringVar(&providerModel, "model", "", "inference model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = !noCache
	if provider != "" {
		cfg.Inference.Provider = provider
	}
	if providerModel != "" {
		cfg.Inference.Model = providerModel
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Provider: %s\n", cfg.Inference.Provider)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	result, err := p.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Summary: %d chars\n", len(result.Summary))
		fmt.Fprintf(os.Stderr, "✓ Standards met: %d\n", len(result.Compliance.StandardsMet))
		fmt.Fprintf(os.Stderr, "✓ Potential violations: %d\n", len(result.Compliance.PotentialViolations))
		fmt.Fprintln(os.Stderr)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if outJSON == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outJSON, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outJSON)
	return nil
}
