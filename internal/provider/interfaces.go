// Package provider talks to the language models that analyse transcript
// segments.
//
// A provider only moves text: [BuildPrompt] turns an analysis request into
// a system and user message, an [AnalysisProvider] sends them and returns
// the raw model output, and [ParseResult] turns that output into a
// validated [models.AnalysisResult]. Providers are selected by name through
// a [Registry].
package provider

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// AnalysisProvider sends a prompt to a language model.
type AnalysisProvider interface {
	// Analyze returns the raw text of the model's reply. Transport failures
	// and non-2xx replies are reported as ErrProviderUnavailable.
	Analyze(ctx context.Context, prompt Prompt) (string, error)

	// Name returns the registry name of the provider.
	Name() string
}
