package kv

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, cfg Config) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s, err := Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_NameCache(t *testing.T) {
	s := openTestStore(t, Config{NameTTL: time.Hour})

	_, ok := s.Name("1001")
	assert.False(t, ok)

	require.NoError(t, s.SetName("1001", "Alice"))
	name, ok := s.Name("1001")
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestStore_NameExpires(t *testing.T) {
	s := openTestStore(t, Config{NameTTL: time.Second})

	require.NoError(t, s.SetName("1001", "Alice"))

	assert.Eventually(t, func() bool {
		_, ok := s.Name("1001")
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStore_CredentialsPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s, err := Open(Config{Path: dir}, logger)
	require.NoError(t, err)

	cookie, err := s.LoadCredentials()
	require.NoError(t, err)
	assert.Empty(t, cookie)

	require.NoError(t, s.SaveCredentials("SUB=abc"))
	require.NoError(t, s.Close())

	reopened := openTestStore(t, Config{Path: dir})
	cookie, err = reopened.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "SUB=abc", cookie)
}
