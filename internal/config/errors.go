package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing or unusable DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token or quota settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAnalysisConfigs indicates a missing provider name or API key.
	ErrInvalidAnalysisConfigs = errors.New("invalid analysis configuration")
	// ErrInvalidServerConfigs indicates that no listener address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero analysis interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
