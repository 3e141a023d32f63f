package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"independent-director/internal/logging"
	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

const (
	// maxHistoryEntries caps the stored turns per thread to manage memory
	maxHistoryEntries = 50

	historyTTL = 24 * time.Hour
)

// ConversationHistory represents the complete chat history for a thread
type ConversationHistory struct {
	ThreadID  string               `json:"thread_id"`
	Entries   []models.ChatMessage `json:"entries"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// HistoryKV is the key-value surface the history store needs
type HistoryKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// HistoryStore persists chat threads so a conversation survives page
// reloads and multiple API calls
type HistoryStore struct {
	kv     HistoryKV
	logger logging.Logger
}

// NewHistoryStore creates a history store backed by the given key-value client
func NewHistoryStore(kv HistoryKV) *HistoryStore {
	return &HistoryStore{
		kv:     kv,
		logger: logging.GetGlobalLogger(),
	}
}

// Thread retrieves the history for a thread, or an empty history for an
// unknown thread ID
func (h *HistoryStore) Thread(ctx context.Context, threadID string) (*ConversationHistory, error) {
	raw, err := h.kv.Get(ctx, threadKey(threadID))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return &ConversationHistory{
				ThreadID:  threadID,
				Entries:   []models.ChatMessage{},
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}

	var history ConversationHistory
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
	}
	return &history, nil
}

// Append records a user/assistant exchange on the thread
func (h *HistoryStore) Append(ctx context.Context, threadID string, turns ...models.ChatMessage) error {
	history, err := h.Thread(ctx, threadID)
	if err != nil {
		return err
	}

	history.Entries = append(history.Entries, turns...)
	history.UpdatedAt = time.Now()

	if len(history.Entries) > maxHistoryEntries {
		history.Entries = history.Entries[len(history.Entries)-maxHistoryEntries:]
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}

	if err := h.kv.Set(ctx, threadKey(threadID), string(historyJSON), historyTTL); err != nil {
		h.logger.Error("Failed to save conversation entry", map[string]interface{}{
			"thread_id": threadID,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to save conversation entry: %w", err)
	}
	return nil
}

// Drop deletes a conversation thread
func (h *HistoryStore) Drop(ctx context.Context, threadID string) error {
	return h.kv.Del(ctx, threadKey(threadID))
}

func threadKey(threadID string) string {
	return fmt.Sprintf("conversation:thread:%s", threadID)
}
