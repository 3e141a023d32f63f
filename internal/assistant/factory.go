package assistant

import (
	"fmt"

	"independent-director/internal/assistant/providers"
	"independent-director/internal/config"
)

// Factory creates assistant provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{config: cfg}
}

// CreateProvider creates a provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", f.config.LLM.Provider)
	}
}

// SupportedProviders returns the list of supported providers
func (f *Factory) SupportedProviders() []string {
	return []string{"claude"}
}
