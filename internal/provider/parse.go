package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/validators"
	"github.com/MKhiriev/go-insight-keeper/models"
)

var resultValidator = validators.NewAnalysisValidator()

// ParseResult decodes and validates raw model output. Output wrapped in a
// markdown code fence is accepted. An over-long action list is truncated;
// a language pattern count outside 1..3 is rejected.
func ParseResult(raw string) (models.AnalysisResult, error) {
	content := stripCodeFence(raw)
	if content == "" {
		return models.AnalysisResult{}, fmt.Errorf("%w: empty output", ErrMalformedProviderResponse)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrMalformedProviderResponse, err)
	}

	if len(result.Meta.Actions) > validators.MaxActionItems {
		result.Meta.Actions = result.Meta.Actions[:validators.MaxActionItems]
	}

	if err := resultValidator.Validate(context.Background(), result); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrMalformedProviderResponse, err)
	}

	return result, nil
}

func stripCodeFence(raw string) string {
	content := strings.TrimSpace(raw)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if len(content) >= 4 && strings.EqualFold(content[:4], "json") {
		content = content[4:]
	}
	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content)
}
