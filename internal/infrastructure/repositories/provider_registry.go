package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/scmbridge/config"
	domainRepos "github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// ProviderFactory is a constructor function that creates a ProviderRepository from its configuration.
type ProviderFactory func(cfg config.ProviderConfig) domainRepos.ProviderRepository

// ProviderRegistry manages all registered SCM provider kinds.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory under the given kind (e.g. "static").
func (r *ProviderRegistry) Register(kind string, factory ProviderFactory) {
	r.providers[kind] = factory
}

// Get returns a provider instance built from cfg by the factory for cfg.Kind.
func (r *ProviderRegistry) Get(cfg config.ProviderConfig) (domainRepos.ProviderRepository, error) {
	factory, ok := r.providers[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown provider kind: %q", cfg.Kind)
	}
	return factory(cfg), nil
}

// Kinds returns the registered provider kinds, sorted.
func (r *ProviderRegistry) Kinds() []string {
	kinds := make([]string, 0, len(r.providers))
	for kind := range r.providers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
