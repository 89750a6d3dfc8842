// Package config loads activity-recap settings from an optional YAML file and
// RECAP_* environment variables using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/internal/export"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RECAP_DB_PATH
const EnvPrefix = "RECAP"

// Config holds application configuration
type Config struct {
	// DBPath is the SQLite event store file.
	DBPath string `mapstructure:"db_path"`
	// CacheDir holds cached recaps.
	CacheDir string `mapstructure:"cache_dir"`
	// Profile is used when neither the command nor the import file names one.
	Profile string `mapstructure:"profile"`
	// Format is the default export format.
	Format string `mapstructure:"format"`
	// OutputDir is where export writes files.
	OutputDir string       `mapstructure:"output_dir"`
	Server    ServerConfig `mapstructure:"server"`
	Log       LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the HTTP recap service
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig configures the leveled logger
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath:    filepath.Join(home, ".activity-recap", "recap.db"),
		CacheDir:  filepath.Join(home, ".activity-recap-cache"),
		Profile:   string(internal.ProfileCustom),
		Format:    "md",
		OutputDir: "./recaps",
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/activity-recap/config.yaml
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "activity-recap", "config.yaml"), nil
}

// Load reads configuration from path. An empty path falls back to
// DefaultConfigPath, which may be missing. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err == nil {
			path = defaultPath
		}
	}

	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("cache_dir", cfg.CacheDir)
	v.SetDefault("profile", cfg.Profile)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("log.level", cfg.Log.Level)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, &internal.ParseError{Source: "yaml", Key: path, Err: err}
			}
			internal.LogDebug("Loaded config from %s", path)
		} else if explicit {
			return nil, &internal.StorageError{Path: path, Op: "read", Err: err}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.CacheDir = expandHome(cfg.CacheDir)
	cfg.OutputDir = expandHome(cfg.OutputDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the commands cannot act on
func (c *Config) Validate() error {
	if _, err := internal.ParseProfileType(c.Profile); err != nil {
		return fmt.Errorf("config: profile: %w", err)
	}
	if _, err := export.NewExporter(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if _, err := internal.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: db_path must be set")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("config: server.addr must be set")
	}
	return nil
}

// ProfileType returns the configured default profile
func (c *Config) ProfileType() internal.ProfileType {
	p, err := internal.ParseProfileType(c.Profile)
	if err != nil {
		return internal.ProfileCustom
	}
	return p
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
