package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LEARNSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LEARNSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LEARNSITE_ADDR -> addr,
	// LEARNSITE_STORE_DRIVER -> store.driver.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "store_"); ok {
		return "store." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validDrivers is the set of recognized store drivers.
var validDrivers = map[StoreDriver]bool{
	StoreMemory:   true,
	StoreSQLite:   true,
	StoreRedis:    true,
	StoreDisabled: true,
}

// validHighlighters is the set of recognized highlighter modes.
var validHighlighters = map[HighlighterMode]bool{
	HighlighterAuto:    true,
	HighlighterBuiltin: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentDir == "" && c.ContentURL == "" {
		return fmt.Errorf("content_dir or content_url is required")
	}

	if c.DefaultCourse == "" {
		return fmt.Errorf("default_course is required")
	}

	if !validDrivers[c.Store.Driver] {
		return fmt.Errorf("invalid store.driver %q: must be one of memory, sqlite, redis, disabled", c.Store.Driver)
	}
	if c.Store.Driver == StoreSQLite && c.Store.Path == "" {
		return fmt.Errorf("store.path is required for the sqlite driver")
	}
	if c.Store.Driver == StoreRedis && c.Store.RedisAddr == "" {
		return fmt.Errorf("store.redis_addr is required for the redis driver")
	}

	if c.Highlighter != "" && !validHighlighters[c.Highlighter] {
		return fmt.Errorf("invalid highlighter %q: must be one of auto, builtin", c.Highlighter)
	}

	if c.LogMode != "" && c.LogMode != "dev" && c.LogMode != "prod" {
		return fmt.Errorf("invalid log_mode %q: must be dev or prod", c.LogMode)
	}

	if c.ListCap < 0 {
		return fmt.Errorf("list_cap must be non-negative")
	}

	if c.ScrollOffset < 0 || c.ScrollTopThreshold < 0 {
		return fmt.Errorf("scroll thresholds must be non-negative")
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}

	return nil
}
