// Package config loads forkcook settings from defaults, an optional YAML
// file, a .env file and FORKCOOK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/forkcook/internal/forkify"
	"github.com/hammamikhairi/forkcook/internal/recipe"
	"github.com/hammamikhairi/forkcook/internal/search"
)

// Store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Environment variable names.
const (
	EnvAPIURL    = "FORKCOOK_API_URL"
	EnvTimeout   = "FORKCOOK_TIMEOUT"
	EnvRateLimit = "FORKCOOK_RATE_LIMIT"
	EnvStore     = "FORKCOOK_STORE"
	EnvDataDir   = "FORKCOOK_DATA_DIR"
	EnvPageSize  = "FORKCOOK_PAGE_SIZE"
	EnvServings  = "FORKCOOK_SERVINGS"
	EnvLogLevel  = "FORKCOOK_LOG_LEVEL"
	EnvLogFile   = "FORKCOOK_LOG_FILE"
	EnvOffline   = "FORKCOOK_OFFLINE"
)

// Config holds every tunable setting.
type Config struct {
	APIURL    string        `yaml:"api_url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"` // requests per second, 0 = unlimited
	Store     string        `yaml:"store"`
	DataDir   string        `yaml:"data_dir"`
	PageSize  int           `yaml:"page_size"`
	Servings  int           `yaml:"default_servings"`
	LogLevel  string        `yaml:"log_level"`
	LogFile   string        `yaml:"log_file"`
	Offline   bool          `yaml:"offline"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:    forkify.DefaultBaseURL,
		Timeout:   15 * time.Second,
		RateLimit: 2,
		Store:     StoreFile,
		DataDir:   ".forkcook",
		PageSize:  search.DefaultPerPage,
		Servings:  recipe.DefaultServings,
		LogLevel:  "info",
		LogFile:   ".forkcook/forkcook.log",
	}
}

// Load builds a Config. path is an optional YAML file; a missing file is
// not an error. A .env file in the working directory is read if present,
// without overriding variables already set in the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvStore); v != "" {
		c.Store = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvRateLimit, err)
		}
		c.RateLimit = f
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvPageSize, err)
		}
		c.PageSize = n
	}
	if v := os.Getenv(EnvServings); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvServings, err)
		}
		c.Servings = n
	}
	if v := os.Getenv(EnvOffline); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvOffline, err)
		}
		c.Offline = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("config: unknown store %q (want file, sqlite or memory)", c.Store)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("config: page size must be positive, got %d", c.PageSize)
	}
	if c.Servings < recipe.MinServings {
		return fmt.Errorf("config: default servings must be at least %d, got %d", recipe.MinServings, c.Servings)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: rate limit must not be negative, got %v", c.RateLimit)
	}
	return nil
}
