// Package config loads gitdash settings from an optional YAML file, a .env
// file and the environment, and keeps small user preferences on disk.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appName = "gitdash"

// Config groups every setting.
type Config struct {
	GitHub  PlatformConfig `yaml:"github" envPrefix:"GITHUB_"`
	GitLab  PlatformConfig `yaml:"gitlab" envPrefix:"GITLAB_"`
	Logging LoggingConfig  `yaml:"logging"`
	HTTP    HTTPConfig     `yaml:"http"`
	Report  ReportConfig   `yaml:"report"`
	Update  UpdateConfig   `yaml:"update"`
}

// PlatformConfig configures one platform API client.
type PlatformConfig struct {
	BaseURL string        `yaml:"base_url" env:"BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// LoggingConfig describes log level and destination. Output is "stdout",
// "stderr", "discard" or a file path.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

// HTTPConfig describes the JSON API server.
type HTTPConfig struct {
	Addr         string        `yaml:"addr" env:"HTTP_ADDR"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
}

// ReportConfig sets where PDF reports are written.
type ReportConfig struct {
	Dir string `yaml:"dir" env:"REPORT_DIR"`
}

// UpdateConfig points at the published version manifest.
type UpdateConfig struct {
	ManifestURL string `yaml:"manifest_url" env:"UPDATE_MANIFEST_URL"`
}

// Load reads GITDASH_CONFIG (or the default config.yaml under Dir), then
// .env and the environment. A missing default file is not an error; a
// missing explicitly named file is.
func Load() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Config{}
	path, explicit := os.LookupEnv("GITDASH_CONFIG")
	if !explicit && Dir() != "" {
		path = filepath.Join(Dir(), "config.yaml")
	}
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.GitHub.BaseURL == "" {
		c.GitHub.BaseURL = "https://api.github.com"
	}
	if c.GitHub.Timeout <= 0 {
		c.GitHub.Timeout = 30 * time.Second
	}
	if c.GitLab.BaseURL == "" {
		c.GitLab.BaseURL = "https://gitlab.com/api/v4"
	}
	if c.GitLab.Timeout <= 0 {
		c.GitLab.Timeout = 30 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}

	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.ReadTimeout <= 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	// Summary requests fan out to several upstream calls.
	if c.HTTP.WriteTimeout <= 0 {
		c.HTTP.WriteTimeout = 90 * time.Second
	}

	if c.Report.Dir == "" {
		c.Report.Dir = "."
	}
	if c.Update.ManifestURL == "" {
		c.Update.ManifestURL = "https://raw.githubusercontent.com/sigmotoa/gitdash/main/version.json"
	}
}

// StateLogPath is the default log file used while the terminal UI owns
// stdout and stderr.
func StateLogPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appName+".log")
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, appName, appName+".log")
}
