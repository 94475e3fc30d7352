package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/greenstamp/greenstamp/internal/chatbot"
	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/pipeline"
	"github.com/greenstamp/greenstamp/internal/provenance"
	"github.com/greenstamp/greenstamp/internal/server"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the GreenStamp HTTP API server",
	Long: `Start the HTTP API exposing document analysis, compliance
validation, report generation, the chatbot and the report registry.

Example:
  greenstamp serve
  greenstamp serve --port 9000
  GREENSTAMP_INFERENCE_PROVIDER=openai greenstamp serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen address (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	serveCmd.Flags().StringVar(&provider, "provider", "", "inference provider (keyword, openai, ollama)")
	serveCmd.Flags().StringVar(&providerModel, "model", "", "inference model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if provider != "" {
		cfg.Inference.Provider = provider
	}
	if providerModel != "" {
		cfg.Inference.Model = providerModel
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	// The chat generator shares the pipeline engine but loads lazily, so
	// keyword-only deployments never pay for conversational inference.
	bot := chatbot.New(p.KnowledgeBase(), p.Engine(), func() (inference.Generator, error) {
		return p.Engine(), nil
	}, cfg.Chatbot.HistoryLimit)

	registrar := provenance.NewRegistrar(p.Engine(), provenance.NewMemoryLedger(), provenance.NewStore())

	srv := server.New(cfg, p, bot, registrar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).
			Str("provider", cfg.Inference.Provider).Msg("starting server")
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(os.Stderr, "\nShutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
