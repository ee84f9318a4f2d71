package session

import (
	"context"
	"testing"
	"time"

	"aidentify-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedisRepository keeps values in a map, mirroring the contract's absent
// key behavior.
type fakeRedisRepository struct {
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(data)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestCredentialStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Set then Current round-trips the credential", func(t *testing.T) {
		repo := newFakeRedisRepository()
		store := NewCredentialStore(repo, time.Hour)

		credential := credentialWithRole(t, "doctor", time.Now().Add(time.Hour))
		require.NoError(t, store.Set(ctx, "session-1", credential))

		loaded, err := store.Current(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, credential.Token, loaded.Token)
	})

	t.Run("Current returns nil without error when nothing stored", func(t *testing.T) {
		store := NewCredentialStore(newFakeRedisRepository(), time.Hour)

		loaded, err := store.Current(ctx, "unknown-session")
		require.NoError(t, err)
		assert.Nil(t, loaded, "absent credential must read as nil, not an error")
	})

	t.Run("Set replaces the previous credential wholesale", func(t *testing.T) {
		repo := newFakeRedisRepository()
		store := NewCredentialStore(repo, time.Hour)

		first := credentialWithRole(t, "employee", time.Now().Add(time.Hour))
		second := credentialWithRole(t, "admin", time.Now().Add(2*time.Hour))
		require.NoError(t, store.Set(ctx, "session-1", first))
		require.NoError(t, store.Set(ctx, "session-1", second))

		loaded, err := store.Current(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, second.Token, loaded.Token)
		assert.Equal(t, models.RoleAdmin, RoleOf(loaded))
	})

	t.Run("Clear removes the credential", func(t *testing.T) {
		repo := newFakeRedisRepository()
		store := NewCredentialStore(repo, time.Hour)

		credential := credentialWithRole(t, "doctor", time.Now().Add(time.Hour))
		require.NoError(t, store.Set(ctx, "session-1", credential))
		require.NoError(t, store.Clear(ctx, "session-1"))

		loaded, err := store.Current(ctx, "session-1")
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}
