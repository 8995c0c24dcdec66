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
	AnthropicName           = "anthropic"
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type anthropicProvider struct {
	client    *utils.HTTPClient
	model     string
	maxTokens int
	logger    *logger.Logger
}

// NewAnthropicProvider returns a provider for the Anthropic Messages API.
func NewAnthropicProvider(cfg config.Analysis, log *logger.Logger) (AnalysisProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, ErrMissingModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)
	client.
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", anthropicVersion)

	return &anthropicProvider{client: client, model: cfg.Model, maxTokens: cfg.MaxTokens, logger: log}, nil
}

func (p *anthropicProvider) Name() string {
	return AnthropicName
}

func (p *anthropicProvider) Analyze(ctx context.Context, prompt Prompt) (string, error) {
	var (
		result  anthropicResponse
		failure anthropicError
	)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(anthropicRequest{
			Model:     p.model,
			MaxTokens: p.maxTokens,
			System:    prompt.System,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt.User}},
		}).
		SetResult(&result).
		SetError(&failure).
		Post("/v1/messages")
	if err != nil {
		p.logger.Err(err).Str("func", "*anthropicProvider.Analyze").Msg("anthropic request failed")
		return "", fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if resp.IsError() {
		p.logger.Error().
			Str("func", "*anthropicProvider.Analyze").
			Int("status", resp.StatusCode()).
			Str("error_type", failure.Error.Type).
			Str("error_message", failure.Error.Message).
			Msg("anthropic returned an error")
		return "", fmt.Errorf("%w: anthropic status %d", ErrProviderUnavailable, resp.StatusCode())
	}

	var text strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("%w: anthropic reply has no text", ErrProviderUnavailable)
	}

	if result.StopReason == "max_tokens" {
		p.logger.Warn().Str("func", "*anthropicProvider.Analyze").Msg("anthropic reply was truncated by max_tokens")
	}

	return text.String(), nil
}
