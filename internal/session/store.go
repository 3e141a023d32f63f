package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"independent-director/internal/config"
	"independent-director/internal/logging"
	"independent-director/pkg/models"
	"independent-director/pkg/utils"
)

// Blobs is the durable storage behind the session store. Implemented by the
// Redis client in production and by MemoryBlobs in tests.
type Blobs interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Authenticator is the slice of the remote gateway the session store needs
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.BackendUser, error)
	Signup(ctx context.Context, email, password, name string) error
}

// Store owns authenticated identity. Persisted blobs are the sole durability
// mechanism for sessions; logout never calls the backend because no
// server-side session invalidation exists.
type Store struct {
	blobs  Blobs
	auth   Authenticator
	ttl    time.Duration
	prefix string
	logger logging.Logger
}

// NewStore creates a session store persisting under the configured storage key
func NewStore(cfg *config.Config, blobs Blobs, auth Authenticator) *Store {
	return &Store{
		blobs:  blobs,
		auth:   auth,
		ttl:    cfg.Session.TTL,
		prefix: cfg.Session.StorageKey + ":",
		logger: logging.GetGlobalLogger(),
	}
}

// Restore reads the persisted session for a token. A corrupt blob is cleared
// and reported as no identity; Restore never returns a parse failure to the
// caller.
func (s *Store) Restore(ctx context.Context, token string) (*models.User, bool) {
	if token == "" {
		return nil, false
	}

	blob, err := s.blobs.Get(ctx, s.prefix+token)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			s.logger.Warn("Session blob read failed", map[string]interface{}{"error": err.Error()})
		}
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		s.logger.Warn("Clearing corrupt session blob", map[string]interface{}{"error": err.Error()})
		_ = s.blobs.Del(ctx, s.prefix+token)
		return nil, false
	}

	return &user, true
}

// LoginWithEmail authenticates against the backend and persists the session.
// On failure the error propagates and no state changes.
func (s *Store) LoginWithEmail(ctx context.Context, email, password string) (models.User, string, error) {
	backendUser, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		ID:          backendUser.ID,
		Email:       backendUser.Email,
		DisplayName: backendUser.Name,
		PhotoURL:    utils.AvatarURL(backendUser.Name),
	}

	token := utils.GenerateSessionToken()
	blob, err := json.Marshal(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.blobs.Set(ctx, s.prefix+token, string(blob), s.ttl); err != nil {
		return models.User{}, "", fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("User logged in", map[string]interface{}{"email": user.Email})
	return user, token, nil
}

// SignupWithEmail registers the account and immediately logs in with the
// same credentials, because the backend returns no session on signup
func (s *Store) SignupWithEmail(ctx context.Context, email, password, name string) (models.User, string, error) {
	if err := s.auth.Signup(ctx, email, password, name); err != nil {
		return models.User{}, "", err
	}
	return s.LoginWithEmail(ctx, email, password)
}

// Logout clears the persisted session. It never calls the backend.
func (s *Store) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.blobs.Del(ctx, s.prefix+token)
}
