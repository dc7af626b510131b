package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "readingctl", "config.yml")
}

// Load reads the config from disk and the environment. A missing
// config file yields the defaults; env vars with the READINGCTL_
// prefix override file values. A .env file in the working directory,
// if present, is loaded first so local development endpoints can be
// set without exporting anything.
func Load() (*Config, error) {
	// Ignore a missing .env; only explicit files matter.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("service.base_url", "http://localhost:3000")
	v.SetDefault("assistant.base_url", "http://localhost:3001")
	v.SetDefault("assistant.streaming", true)
	v.SetDefault("lookup.base_url", "https://www.googleapis.com/books/v1")
	v.SetDefault("session.path", "")
	v.SetDefault("cache.dir", "")
	v.SetDefault("ui.theme", "minimal")

	v.SetEnvPrefix("READINGCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("READINGCTL_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, everything has a default.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Service.BaseURL = strings.TrimRight(cfg.Service.BaseURL, "/")
	cfg.Assistant.BaseURL = strings.TrimRight(cfg.Assistant.BaseURL, "/")
	cfg.Session.Path = ExpandHome(cfg.Session.Path)
	cfg.Cache.Dir = ExpandHome(cfg.Cache.Dir)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := os.Getenv("READINGCTL_CONFIG")
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
