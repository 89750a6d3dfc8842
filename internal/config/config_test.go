package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/activity-recap/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func isolateConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Profile)
	assert.Equal(t, "md", cfg.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "recap.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, internal.ProfileCustom, cfg.ProfileType())
}

func TestLoadFromFile(t *testing.T) {
	isolateConfigDir(t)
	path := writeConfig(t, `
db_path: /tmp/recap-test.db
profile: developer
format: html
server:
  addr: 127.0.0.1:9090
  read_timeout: 2s
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/recap-test.db", cfg.DBPath)
	assert.Equal(t, internal.ProfileDeveloper, cfg.ProfileType())
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateConfigDir(t)
	path := writeConfig(t, "profile: developer\n")
	t.Setenv("RECAP_PROFILE", "student")
	t.Setenv("RECAP_SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "student", cfg.Profile)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadExpandsHome(t *testing.T) {
	isolateConfigDir(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	path := writeConfig(t, "cache_dir: ~/recap-cache\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "recap-cache"), cfg.CacheDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolateConfigDir(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var serr *internal.StorageError
	assert.True(t, errors.As(err, &serr))
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	isolateConfigDir(t)
	path := writeConfig(t, "profile: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var perr *internal.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown profile", mutate: func(c *Config) { c.Profile = "astronaut" }, wantErr: "profile"},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "pdf" }, wantErr: "format"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log.level"},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = " " }, wantErr: "db_path"},
		{name: "empty addr", mutate: func(c *Config) { c.Server.Addr = "" }, wantErr: "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsInvalidProfileFromEnv(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("RECAP_PROFILE", "astronaut")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, internal.ErrInvalidInput))
}
