package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults fill every field no source has set.
const (
	DefaultTokenIssuer        = "go-insight-keeper"
	DefaultTokenDuration      = 7 * 24 * time.Hour
	DefaultQuotaTimezone      = "UTC"
	DefaultAnalysisProvider   = "anthropic"
	DefaultAnalysisModel      = "claude-sonnet-4-20250514"
	DefaultAnalysisMaxTokens  = 4000
	DefaultAnalysisTimeout    = 90 * time.Second
	DefaultRequestTimeout     = 2 * time.Minute
	DefaultAdapterTimeout     = 2 * time.Minute
	DefaultAnalysisInterval   = 60 * time.Second
	DefaultLoginRatePerMinute = 10
	DefaultLocalDSN           = "insight-client.db"
)

type configBuilder struct {
	// json is the lowest-priority source, then configs in insertion order.
	json    *StructuredConfig
	configs []*StructuredConfig
	// environ replaces the process environment when set.
	environ map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

// build merges the JSON file, env and flags (later non-zero values win) and
// fills the remaining zero fields with defaults.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := make([]*StructuredConfig, 0, len(b.configs)+1)
	if b.json != nil {
		sources = append(sources, b.json)
	}
	sources = append(sources, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(config, defaults()); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			QuotaTimezone: DefaultQuotaTimezone,
			Analysis: Analysis{
				Provider:  DefaultAnalysisProvider,
				Model:     DefaultAnalysisModel,
				MaxTokens: DefaultAnalysisMaxTokens,
				Timeout:   DefaultAnalysisTimeout,
			},
		},
		Storage: Storage{
			Local: Local{DSN: DefaultLocalDSN},
		},
		Server: Server{
			RequestTimeout:     DefaultRequestTimeout,
			LoginRatePerMinute: DefaultLoginRatePerMinute,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			AnalysisInterval: DefaultAnalysisInterval,
		},
	}
}
