package assistant

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"independent-director/internal/config"
	"independent-director/internal/logging"
	"independent-director/pkg/models"
)

// ErrBusy is returned when the assistant rate limit is exhausted
var ErrBusy = fmt.Errorf("assistant is handling too many requests, try again shortly")

// Manager manages the assistant provider lifecycle and rate limits calls
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new assistant manager instance
func NewManager(cfg *config.Config) *Manager {
	perMinute := cfg.LLM.RateLimit
	if perMinute <= 0 {
		perMinute = 30
	}

	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting assistant manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create assistant provider: %w", err)
	}
	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		// Allow the server to start without the assistant; the endpoints will
		// report unavailable
		m.logger.Warn("Assistant health check failed, assistant features disabled", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("Assistant manager started", map[string]interface{}{
			"provider": m.provider.Name(),
		})
	}

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping assistant manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// IsHealthy reports whether the provider is available
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// ProviderName returns the active provider name
func (m *Manager) ProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.Name()
	}
	return "none"
}

func (m *Manager) acquire() (Provider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("assistant manager not started")
	}
	if !healthy {
		return nil, fmt.Errorf("assistant provider is not available - check API key configuration (set LLM_API_KEY)")
	}
	if !m.limiter.Allow() {
		return nil, ErrBusy
	}
	return provider, nil
}

// RankDirectors ranks directors against a natural-language query and
// resolves the returned IDs back to directors, preserving rank order
func (m *Manager) RankDirectors(ctx context.Context, query string, directors []models.Director) ([]models.Director, error) {
	provider, err := m.acquire()
	if err != nil {
		return nil, err
	}

	ids, err := provider.RankDirectorIDs(ctx, query, directors)
	if err != nil {
		return nil, err
	}
	return resolveIDs(ids, directors), nil
}

// SummarizeDirector generates a short profile summary
func (m *Manager) SummarizeDirector(ctx context.Context, director models.Director) (string, error) {
	provider, err := m.acquire()
	if err != nil {
		return "", err
	}
	return provider.SummarizeDirector(ctx, director)
}

// SimilarDirectors recommends similar directors, excluding the subject
func (m *Manager) SimilarDirectors(ctx context.Context, subject models.Director, all []models.Director) ([]models.Director, error) {
	provider, err := m.acquire()
	if err != nil {
		return nil, err
	}

	others := make([]models.Director, 0, len(all))
	for _, d := range all {
		if d.ID != subject.ID {
			others = append(others, d)
		}
	}

	ids, err := provider.SimilarDirectorIDs(ctx, subject, others)
	if err != nil {
		return nil, err
	}
	return resolveIDs(ids, others), nil
}

// ChatReply answers a chat turn grounded in the directory data
func (m *Manager) ChatReply(ctx context.Context, history []models.ChatMessage, message string, directors []models.Director) (string, error) {
	provider, err := m.acquire()
	if err != nil {
		return "", err
	}
	return provider.ChatReply(ctx, history, message, directors)
}

// resolveIDs maps ranked IDs back to directors, keeping the returned order
// and silently skipping IDs that no longer resolve
func resolveIDs(ids []string, directors []models.Director) []models.Director {
	byID := make(map[string]models.Director, len(directors))
	for _, d := range directors {
		byID[d.ID] = d
	}

	resolved := make([]models.Director, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			resolved = append(resolved, d)
		}
	}
	return resolved
}
