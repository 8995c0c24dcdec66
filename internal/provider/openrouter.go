package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/utils"
)

const (
	OpenRouterName           = "openrouter"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterAppName        = "go-insight-keeper"
)

type openRouterMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterRequest struct {
	Model     string              `json:"model"`
	MaxTokens int                 `json:"max_tokens,omitempty"`
	Messages  []openRouterMessage `json:"messages"`
}

type openRouterResponse struct {
	Choices []struct {
		Message openRouterMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type openRouterProvider struct {
	client    *utils.HTTPClient
	model     string
	maxTokens int
	logger    *logger.Logger
}

// NewOpenRouterProvider returns a provider for OpenRouter chat completions.
func NewOpenRouterProvider(cfg config.Analysis, log *logger.Logger) (AnalysisProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, ErrMissingModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenRouterBaseURL
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)
	client.
		SetHeader("X-Title", openRouterAppName).
		SetAuthToken(cfg.APIKey)

	return &openRouterProvider{client: client, model: cfg.Model, maxTokens: cfg.MaxTokens, logger: log}, nil
}

func (p *openRouterProvider) Name() string {
	return OpenRouterName
}

func (p *openRouterProvider) Analyze(ctx context.Context, prompt Prompt) (string, error) {
	var result openRouterResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(openRouterRequest{
			Model:     p.model,
			MaxTokens: p.maxTokens,
			Messages: []openRouterMessage{
				{Role: "system", Content: prompt.System},
				{Role: "user", Content: prompt.User},
			},
		}).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		p.logger.Err(err).Str("func", "*openRouterProvider.Analyze").Msg("openrouter request failed")
		return "", fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if resp.IsError() {
		body := string(resp.Body())
		if len(body) > 4096 {
			body = body[:4096]
		}
		p.logger.Error().
			Str("func", "*openRouterProvider.Analyze").
			Int("status", resp.StatusCode()).
			Str("body", body).
			Msg("openrouter returned an error")
		return "", fmt.Errorf("%w: openrouter status %d", ErrProviderUnavailable, resp.StatusCode())
	}

	if result.Error != nil && result.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrProviderUnavailable, result.Error.Message)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: openrouter reply has no text", ErrProviderUnavailable)
	}

	return result.Choices[0].Message.Content, nil
}
