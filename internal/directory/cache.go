package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"independent-director/internal/logging"
	"independent-director/pkg/models"
)

// Lister is the slice of the remote gateway the cache needs
type Lister interface {
	ListDirectors(ctx context.Context) ([]models.Director, error)
}

// Snapshot persists the last good director list so a restart can serve
// stale-but-present data before the first fetch completes
type Snapshot interface {
	Save(ctx context.Context, directors []models.Director) error
	Load(ctx context.Context) ([]models.Director, error)
}

// Cache holds the full director list fetched from the backend and the
// filtered view produced by the most recent search. Failed reloads leave
// prior state untouched.
type Cache struct {
	lister Lister
	snap   Snapshot
	logger logging.Logger

	mu       sync.RWMutex
	master   []models.Director
	filtered []models.Director
	loaded   bool

	// reload generation bookkeeping: a fetch that started before a newer
	// successful fetch is discarded instead of overwriting it
	nextGen    uint64
	appliedGen uint64
}

// NewCache creates a directory cache. snap may be nil.
func NewCache(lister Lister, snap Snapshot) *Cache {
	return &Cache{
		lister: lister,
		snap:   snap,
		logger: logging.GetGlobalLogger(),
	}
}

// RestoreSnapshot seeds the cache from the persisted snapshot if one exists.
// Called once at startup before the first LoadAll.
func (c *Cache) RestoreSnapshot(ctx context.Context) {
	if c.snap == nil {
		return
	}

	directors, err := c.snap.Load(ctx)
	if err != nil || len(directors) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return
	}
	c.master = directors
	c.filtered = directors
	c.logger.Info("Directory restored from snapshot", map[string]interface{}{
		"directors": len(directors),
	})
}

// LoadAll fetches the full director list, replacing both the master list and
// the filtered view. On failure the prior state is kept and the error is
// returned for the caller to log or surface.
func (c *Cache) LoadAll(ctx context.Context) error {
	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.mu.Unlock()

	directors, err := c.lister.ListDirectors(ctx)
	if err != nil {
		c.logger.Error("Directory reload failed, keeping previous data", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen < c.appliedGen {
		c.logger.Debug("Discarding stale directory reload", map[string]interface{}{
			"generation": gen,
			"applied":    c.appliedGen,
		})
		return nil
	}

	c.appliedGen = gen
	c.master = directors
	c.filtered = directors
	c.loaded = true

	if c.snap != nil {
		if err := c.snap.Save(ctx, directors); err != nil {
			c.logger.Warn("Failed to persist directory snapshot", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	c.logger.Info("Directory reloaded", map[string]interface{}{"directors": len(directors)})
	return nil
}

// Search filters the directory. An empty query resets the filtered view to
// the full master list; a non-empty query keeps every director whose name,
// industry or description contains it, case-insensitively, in source order.
func (c *Cache) Search(query string) []models.Director {
	c.mu.Lock()
	defer c.mu.Unlock()

	if query == "" {
		c.filtered = c.master
		return c.filtered
	}

	q := strings.ToLower(query)
	results := make([]models.Director, 0)
	for _, d := range c.master {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Industry), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			results = append(results, d)
		}
	}
	c.filtered = results
	return results
}

// Loaded reports whether at least one backend fetch has succeeded
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// All returns the master list
func (c *Cache) All() []models.Director {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.master
}

// Filtered returns the current filtered view
func (c *Cache) Filtered() []models.Director {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filtered
}

// ByID looks up a director in the master list
func (c *Cache) ByID(id string) (models.Director, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.master {
		if d.ID == id {
			return d, true
		}
	}
	return models.Director{}, false
}

// ByEmail looks up a director by email, case-insensitively
func (c *Cache) ByEmail(email string) (models.Director, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return models.Director{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.master {
		if strings.ToLower(d.Email) == needle {
			return d, true
		}
	}
	return models.Director{}, false
}

// StartRefresh reloads the directory on the given interval until ctx is
// cancelled
func (c *Cache) StartRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = c.LoadAll(ctx)
			}
		}
	}()
}
