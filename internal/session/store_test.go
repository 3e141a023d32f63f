package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"independent-director/internal/config"
	"independent-director/pkg/models"
)

// fakeAuth records calls and answers with a fixed identity
type fakeAuth struct {
	loginErr   error
	signupErr  error
	signups    int
	logins     int
	lastSignup string
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (models.BackendUser, error) {
	f.logins++
	if f.loginErr != nil {
		return models.BackendUser{}, f.loginErr
	}
	return models.BackendUser{ID: "u1", Email: email, Name: "Asha Menon"}, nil
}

func (f *fakeAuth) Signup(_ context.Context, email, _, _ string) error {
	f.signups++
	f.lastSignup = email
	return f.signupErr
}

func newTestStore(t *testing.T, auth *fakeAuth) (*Store, *MemoryBlobs) {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	blobs := NewMemoryBlobs()
	return NewStore(cfg, blobs, auth), blobs
}

func TestLoginPersistsSession(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuth{})

	user, token, err := store.LoginWithEmail(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Asha Menon", user.DisplayName)
	assert.NotEmpty(t, user.PhotoURL)

	restored, ok := store.Restore(context.Background(), token)
	require.True(t, ok)
	assert.Equal(t, user.Email, restored.Email)
}

func TestLoginFailureChangesNothing(t *testing.T) {
	store, blobs := newTestStore(t, &fakeAuth{loginErr: fmt.Errorf("invalid credentials")})

	_, token, err := store.LoginWithEmail(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Empty(t, blobs.items)
}

func TestSignupLogsStraightIn(t *testing.T) {
	auth := &fakeAuth{}
	store, _ := newTestStore(t, auth)

	user, token, err := store.SignupWithEmail(context.Background(), "asha@example.com", "secret", "Asha Menon")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "asha@example.com", user.Email)

	assert.Equal(t, 1, auth.signups)
	assert.Equal(t, 1, auth.logins, "signup must be followed by a login")
}

func TestRestoreUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuth{})

	_, ok := store.Restore(context.Background(), "nope")
	assert.False(t, ok)

	_, ok = store.Restore(context.Background(), "")
	assert.False(t, ok)
}

func TestRestoreClearsCorruptBlob(t *testing.T) {
	store, blobs := newTestStore(t, &fakeAuth{})

	key := store.prefix + "tok"
	require.NoError(t, blobs.Set(context.Background(), key, "{not json", 0))

	_, ok := store.Restore(context.Background(), "tok")
	assert.False(t, ok, "corrupt blob restores as unauthenticated, not as an error")

	_, err := blobs.Get(context.Background(), key)
	assert.Error(t, err, "corrupt blob is cleared")
}

func TestLogoutClearsSession(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuth{})

	_, token, err := store.LoginWithEmail(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, store.Logout(context.Background(), token))

	_, ok := store.Restore(context.Background(), token)
	assert.False(t, ok)

	// Logging out twice is harmless
	assert.NoError(t, store.Logout(context.Background(), token))
	assert.NoError(t, store.Logout(context.Background(), ""))
}
