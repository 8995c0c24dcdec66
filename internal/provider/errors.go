package provider

import "errors"

var (
	// ErrProviderUnavailable covers transport failures, non-2xx replies and
	// replies without text.
	ErrProviderUnavailable = errors.New("analysis provider unavailable")
	// ErrMalformedProviderResponse is returned when the model output is not
	// a valid analysis result.
	ErrMalformedProviderResponse = errors.New("malformed analysis provider response")

	ErrUnknownProvider = errors.New("unknown analysis provider")
	ErrMissingAPIKey   = errors.New("analysis provider api key is required")
	ErrMissingModel    = errors.New("analysis provider model is required")
)
