package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // restores the original value after the test
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "STORAGE_TYPE", "MONGO_DB", "AUTH_PROVIDER", "AUTH_DISABLED", "PROFANITY_FILTER")

	cfg := FromEnv()
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, StorageMongo, cfg.StorageType)
	require.Equal(t, "threadHubDB", cfg.MongoDB)
	require.Equal(t, AuthJWT, cfg.AuthProvider)
	require.False(t, cfg.AuthDisabled)
	require.False(t, cfg.ProfanityFilter)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_TYPE", "MEMORY")
	t.Setenv("MONGO_DB", "forum")
	t.Setenv("AUTH_PROVIDER", "Firebase")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("PROFANITY_FILTER", "not-a-bool")

	cfg := FromEnv()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, StorageMemory, cfg.StorageType)
	require.Equal(t, "forum", cfg.MongoDB)
	require.Equal(t, AuthFirebase, cfg.AuthProvider)
	require.True(t, cfg.AuthDisabled)
	require.False(t, cfg.ProfanityFilter)
}
