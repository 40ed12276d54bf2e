// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides text generation backends used for proposal copy
// suggestions in the editor. Providers are registered at startup from
// configuration and looked up by name through a Registry.
package ai

import (
	"context"
	"errors"
	"sync"
)

// ErrNoProvider is returned when no AI provider is configured or the
// requested provider name is unknown.
var ErrNoProvider = errors.New("ai: no provider configured")

// Provider is the common interface implemented by all AI backends.
type Provider interface {
	// Generate produces a completion for the given prompts.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier, e.g. "openai" or "gemini".
	Name() string
}

// ProviderConfig holds the settings needed to construct a provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry holds the configured providers and tracks which one is active.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// NewRegistryFromConfig builds a registry with a single provider selected
// by name. An empty name or API key yields an empty registry, meaning AI
// features are disabled.
func NewRegistryFromConfig(name string, cfg ProviderConfig) *Registry {
	r := NewRegistry()
	if name == "" || cfg.APIKey == "" {
		return r
	}
	switch name {
	case "openai":
		r.Register(newOpenAI(cfg))
	case "gemini":
		r.Register(newGemini(cfg))
	}
	return r
}

// Register adds a provider. The first registered provider becomes active.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
	if r.active == "" {
		r.active = p.Name()
	}
}

// SetActive switches the active provider by name.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[name]; !ok {
		return ErrNoProvider
	}
	r.active = name
	return nil
}

// Active returns the currently active provider, or an error when none
// is configured.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == "" {
		return nil, ErrNoProvider
	}
	p, ok := r.providers[r.active]
	if !ok {
		return nil, ErrNoProvider
	}
	return p, nil
}

// Available reports the names of all registered providers.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Enabled reports whether at least one provider is registered.
func (r *Registry) Enabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) > 0
}
