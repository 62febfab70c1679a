package config_test

import (
	"bskybridge/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "https://bsky.social", cfg.Bluesky.PDS)
	require.Equal(t, 300, cfg.Bluesky.Limit)
	require.Equal(t, "...", cfg.Bluesky.Ellipsis)
	require.Equal(t, 30*time.Second, cfg.Bluesky.Timeout)
	require.Equal(t, config.SecretsProviderAWS, cfg.Secrets.Provider)
	require.Equal(t, 1, cfg.Queue.MaxWorkers)
	require.True(t, cfg.Bridge.TrackDeliveries)
}

func TestLoad_yamlAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
project: news
bluesky:
  limit: 280
  ellipsis: "…"
  isolateUrls: true
secrets:
  provider: file
  file: /run/secret.age
`), 0o600))
	t.Setenv("QUEUE_MAX_WORKERS", "3")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "news", cfg.Project)
	require.Equal(t, 280, cfg.Bluesky.Limit)
	require.Equal(t, "…", cfg.Bluesky.Ellipsis)
	require.True(t, cfg.Bluesky.IsolateURLs)
	require.Equal(t, config.SecretsProviderFile, cfg.Secrets.Provider)
	require.Equal(t, "/run/secret.age", cfg.Secrets.File)
	require.Equal(t, 3, cfg.Queue.MaxWorkers)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SECRETS_PROVIDER", "env")
	t.Setenv("BLUESKY_HANDLE", "news.bsky.social")
	t.Setenv("BLUESKY_PASSWORD", "pw")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, config.SecretsProviderEnv, cfg.Secrets.Provider)
	require.Equal(t, "news.bsky.social", cfg.Secrets.Handle)
	require.Equal(t, "pw", cfg.Secrets.Password)
}

func TestLoadEnv_withoutDeliveryTracking(t *testing.T) {
	t.Setenv("BRIDGE_TRACK_DELIVERIES", "false")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.False(t, cfg.Bridge.TrackDeliveries)
}
