package inference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/greenstamp/greenstamp/internal/model"
)

// OpenAIEngine implements the Engine interface against any
// OpenAI-compatible chat completion endpoint
type OpenAIEngine struct {
	client *openai.Client
	config model.InferenceConfig
}

// NewOpenAIEngine creates a new OpenAI-backed engine
func NewOpenAIEngine(config model.InferenceConfig) (*OpenAIEngine, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIEngine{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (e *OpenAIEngine) Name() string { return "openai" }

// IsAvailable checks if the endpoint is configured and reachable
func (e *OpenAIEngine) IsAvailable(ctx context.Context) bool {
	_, err := e.client.ListModels(ctx)
	return err == nil
}

func (e *OpenAIEngine) Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error) {
	return e.complete(ctx, summarizePrompt(text, minLen, maxLen))
}

func (e *OpenAIEngine) ClassifySentiment(ctx context.Context, text string) (model.LabeledScore, error) {
	raw, err := e.complete(ctx, sentimentPrompt(text))
	if err != nil {
		return model.LabeledScore{}, err
	}
	return parseLabeledScore(raw)
}

func (e *OpenAIEngine) ClassifyLabels(ctx context.Context, text string, labels []string) ([]model.LabeledScore, error) {
	raw, err := e.complete(ctx, labelsPrompt(text, labels))
	if err != nil {
		return nil, err
	}
	return parseLabeledScores(raw, labels)
}

func (e *OpenAIEngine) Answer(ctx context.Context, question, contextText string) (model.Answer, error) {
	raw, err := e.complete(ctx, answerPrompt(question, contextText))
	if err != nil {
		return model.Answer{}, err
	}
	return parseAnswer(raw)
}

func (e *OpenAIEngine) Generate(ctx context.Context, prompt string) (string, error) {
	return e.complete(ctx, prompt)
}

// complete issues one chat completion. Temperature is pinned to zero:
// threshold decisions downstream must not move between identical runs.
func (e *OpenAIEngine) complete(ctx context.Context, prompt string) (string, error) {
	chatModel := e.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := e.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := e.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
