package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"soroia/config"
	"soroia/pkg/gemini"
	"soroia/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	httpClient, err := newHTTPClient(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", cfg.Name, err)
	}

	switch cfg.Name {
	case gemini.ProviderName:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			known, ok := openaicompat.KnownBaseURLs[cfg.Name]
			if !ok {
				return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
			}
			baseURL = known
		}
		client, err := openaicompat.New(openaicompat.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAICompatAdapter(cfg.Name, client), nil
	}
}

func newHTTPClient(timeout string) (*http.Client, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
	}
	return &http.Client{Timeout: d}, nil
}

// ManagerConfigFrom converts the retry and fallback settings of cfg.
// Empty durations leave the corresponding limit disabled.
func ManagerConfigFrom(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if cfg.RetryDelay != "" {
		d, err := time.ParseDuration(cfg.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry_delay %q: %w", cfg.RetryDelay, err)
		}
		out.RetryDelay = d
	}
	if cfg.MaxTotalTimeout != "" {
		d, err := time.ParseDuration(cfg.MaxTotalTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
		}
		out.MaxTotalTimeout = d
	}
	return out, nil
}
