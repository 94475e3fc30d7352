package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/util"
)

// OllamaEngine implements the Engine interface for local Ollama models
type OllamaEngine struct {
	baseURL    string
	httpClient *http.Client
	config     model.InferenceConfig
}

// Ollama API structures
type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaEngine creates a new Ollama-backed engine
func NewOllamaEngine(config model.InferenceConfig, proxy model.ProxyConfig) (*OllamaEngine, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &OllamaEngine{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(proxy),
			},
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (e *OllamaEngine) Name() string { return "ollama" }

// IsAvailable checks if the Ollama server responds
func (e *OllamaEngine) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (e *OllamaEngine) Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error) {
	return e.generate(ctx, summarizePrompt(text, minLen, maxLen))
}

func (e *OllamaEngine) ClassifySentiment(ctx context.Context, text string) (model.LabeledScore, error) {
	raw, err := e.generate(ctx, sentimentPrompt(text))
	if err != nil {
		return model.LabeledScore{}, err
	}
	return parseLabeledScore(raw)
}

func (e *OllamaEngine) ClassifyLabels(ctx context.Context, text string, labels []string) ([]model.LabeledScore, error) {
	raw, err := e.generate(ctx, labelsPrompt(text, labels))
	if err != nil {
		return nil, err
	}
	return parseLabeledScores(raw, labels)
}

func (e *OllamaEngine) Answer(ctx context.Context, question, contextText string) (model.Answer, error) {
	raw, err := e.generate(ctx, answerPrompt(question, contextText))
	if err != nil {
		return model.Answer{}, err
	}
	return parseAnswer(raw)
}

func (e *OllamaEngine) Generate(ctx context.Context, prompt string) (string, error) {
	return e.generate(ctx, prompt)
}

// generate issues one non-streaming completion at temperature zero
func (e *OllamaEngine) generate(ctx context.Context, prompt string) (string, error) {
	chatModel := e.config.Model
	if chatModel == "" {
		chatModel = "llama3.2"
	}

	payload, err := json.Marshal(ollamaRequest{
		Model:  chatModel,
		Prompt: prompt,
		System: systemPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0,
			NumPredict:  e.config.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("Ollama error: %s", apiErr.Error)
		}
		return "", fmt.Errorf("Ollama returned status %d", resp.StatusCode)
	}

	var out ollamaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(out.Response), nil
}
