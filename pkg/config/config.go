// Package config loads the cosmoglyph configuration file.
//
// # Overview
//
// Configuration is a TOML file with one table per concern. Everything
// has a sensible default; the file only needs the values being changed:
//
//	[render]
//	width = 800
//	height = 600
//	format = "svg"
//	palette = "palettes/visionary.json"
//
//	[cache]
//	dir = "~/.cache/cosmoglyph"
//	ttl = "168h"
//
//	[serve]
//	addr = ":8322"
//	redis = "localhost:6379"
//	mongo = "mongodb://localhost:27017"
//
// Files are searched in order: the explicit --config path, then
// cosmoglyph.toml in the working directory, then
// $XDG_CONFIG_HOME/cosmoglyph/config.toml. The first file found wins;
// a missing file yields the defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lumenarts/cosmoglyph/pkg/errors"
)

// Config is the full application configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig holds default render parameters.
type RenderConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Format   string `toml:"format"`
	Notice   string `toml:"notice"`
	Palette  string `toml:"palette"`  // palette document path
	Scaffold string `toml:"scaffold"` // scaffold document path
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	Dir string   `toml:"dir"`
	TTL duration `toml:"ttl"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr         string `toml:"addr"`
	Redis        string `toml:"redis"` // redis address, empty disables the shared cache
	Mongo        string `toml:"mongo"` // mongo URI, empty keeps the gallery in memory
	GalleryLimit int    `toml:"gallery_limit"`
}

// duration wraps time.Duration with TOML string decoding ("168h").
type duration struct {
	time.Duration
}

// UnmarshalText implements TOML string decoding for durations.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:  800,
			Height: 600,
			Format: "svg",
		},
		Cache: CacheConfig{
			TTL: duration{7 * 24 * time.Hour},
		},
		Serve: ServeConfig{
			Addr:         ":8322",
			GalleryLimit: 100,
		},
	}
}

// Load reads the configuration, starting from defaults. An explicit
// path must exist; the search locations may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := decodeFile(candidate, &cfg); err != nil {
			return Config{}, err
		}
		break
	}
	return cfg, nil
}

// CacheTTL returns the configured artifact expiry.
func (c Config) CacheTTL() time.Duration {
	return c.Cache.TTL.Duration
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	return nil
}

func searchPaths() []string {
	paths := []string{"cosmoglyph.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "cosmoglyph", "config.toml"))
	}
	return paths
}
