package directory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

const snapshotKey = "directory:snapshot"

// RedisSnapshot persists the last good director list in Redis
type RedisSnapshot struct {
	client *utils.RedisClient
	ttl    time.Duration
}

// NewRedisSnapshot creates a snapshot store with the given TTL
func NewRedisSnapshot(client *utils.RedisClient, ttl time.Duration) *RedisSnapshot {
	return &RedisSnapshot{client: client, ttl: ttl}
}

// Save stores the director list as a JSON blob
func (s *RedisSnapshot) Save(ctx context.Context, directors []models.Director) error {
	blob, err := json.Marshal(directors)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, string(blob), s.ttl)
}

// Load reads the persisted list; a missing snapshot yields an empty slice
func (s *RedisSnapshot) Load(ctx context.Context) ([]models.Director, error) {
	blob, err := s.client.Get(ctx, snapshotKey)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var directors []models.Director
	if err := json.Unmarshal([]byte(blob), &directors); err != nil {
		return nil, err
	}
	return directors, nil
}
