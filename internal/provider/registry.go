package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// Factory builds a provider from its configuration.
type Factory func(cfg config.Analysis, log *logger.Logger) (AnalysisProvider, error)

// Registry maps lower-cased provider names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry returns a registry with every built-in provider.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(AnthropicName, NewAnthropicProvider)
	r.Register(OpenRouterName, NewOpenRouterProvider)
	return r
}

func (r *Registry) Register(name string, f Factory) {
	name = normalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Get builds the provider named by cfg.Provider.
func (r *Registry) Get(cfg config.Analysis, log *logger.Logger) (AnalysisProvider, error) {
	name := normalizeName(cfg.Provider)

	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownProvider, name, strings.Join(r.Names(), ", "))
	}

	p, err := f(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating %s provider: %w", name, err)
	}

	return p, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
