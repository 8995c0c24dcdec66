package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL, e.g. "http://localhost:8080".
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the local SQLite settings.
type ClientStorage struct {
	DSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AnalysisInterval defines how often pending speech is analysed.
	AnalysisInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Workers  ClientWorkers
	LogLevel string
}

// GetClientConfig builds and validates the client view of the merged
// env, flags and JSON configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.Local.DSN,
		},
		Workers: ClientWorkers{
			AnalysisInterval: cfg.Workers.AnalysisInterval,
		},
		LogLevel: cfg.App.LogLevel,
	}
}
