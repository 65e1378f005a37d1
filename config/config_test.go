package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL)
	assert.Equal(t, time.Second, cfg.ConfirmDelay)
	assert.Equal(t, 30*time.Second, cfg.PersistWindow)
	assert.False(t, cfg.UsePostgres())
	assert.False(t, cfg.UseRedis())
	assert.False(t, cfg.UseRabbit())
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CONFIRM_DELAY", "250ms")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.UsePostgres())
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 250*time.Millisecond, cfg.ConfirmDelay)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=aquaagro sslmode=disable", cfg.DSN())
}

func TestLoad_BadDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DRAFT_TTL", "soon")

	_, err := Load()

	assert.Error(t, err)
}
