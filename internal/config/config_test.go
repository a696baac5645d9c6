package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsYamlAndEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
github:
  base_url: "http://gh.local"
  timeout: 5s
gitlab:
  base_url: "http://gl.local/api/v4"
http:
  addr: ":9000"
`)
	t.Setenv("GITDASH_CONFIG", path)
	t.Setenv("GITLAB_TIMEOUT", "7s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://gh.local", cfg.GitHub.BaseURL)
	require.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	require.Equal(t, "http://gl.local/api/v4", cfg.GitLab.BaseURL)
	require.Equal(t, 7*time.Second, cfg.GitLab.Timeout)
	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	require.Equal(t, "https://gitlab.com/api/v4", cfg.GitLab.BaseURL)
	require.Equal(t, 30*time.Second, cfg.GitHub.Timeout)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, ".", cfg.Report.Dir)
	require.NotEmpty(t, cfg.Update.ManifestURL)
}

func TestLoadMissingExplicitFileReturnsError(t *testing.T) {
	t.Setenv("GITDASH_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestPrefsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.Empty(t, LoadTheme())
	require.NoError(t, SaveTheme("nord"))
	require.Equal(t, "nord", LoadTheme())

	require.NoError(t, SavePlatform("gitlab"))
	require.Equal(t, "gitlab", LoadPlatform())
}
