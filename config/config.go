// Package config holds the tunables of the completion engine: cache
// capacity and TTL, and the suggestion staleness bound. Settings load
// from a TOML file; a missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/inlaydev/inlay/cache"
	"github.com/inlaydev/inlay/suggestion"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Duration is a time.Duration that reads from TOML strings such as
// "30s" or "5m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full engine configuration.
type Config struct {
	Cache      CacheConfig      `toml:"cache"`
	Suggestion SuggestionConfig `toml:"suggestion"`
}

// CacheConfig configures the completion result cache.
type CacheConfig struct {
	// Capacity is the maximum number of cached completions.
	Capacity int `toml:"capacity"`
	// TTL is how long a cached completion stays usable. Zero disables
	// expiry.
	TTL Duration `toml:"ttl"`
}

// SuggestionConfig configures the suggestion tracker.
type SuggestionConfig struct {
	// MaxAge is how long an installed suggestion stays presentable.
	// Zero disables the age check.
	MaxAge Duration `toml:"max_age"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Capacity: cache.DefaultCapacity,
			TTL:      Duration{time.Minute},
		},
		Suggestion: SuggestionConfig{
			MaxAge: Duration{suggestion.DefaultMaxAge},
		},
	}
}

// Load reads configuration from path. A missing file is not an error;
// the defaults are returned. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value is inside its allowed range.
func (c Config) Validate() error {
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("%w: cache capacity must not be negative", ErrInvalid)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("%w: cache ttl must not be negative", ErrInvalid)
	}
	if c.Suggestion.MaxAge.Duration < 0 {
		return fmt.Errorf("%w: suggestion max_age must not be negative", ErrInvalid)
	}
	return nil
}
