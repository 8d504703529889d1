// Package config loads server configuration from defaults, an optional
// YAML file, IRONTRACK_* environment variables and command-line flags,
// in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "IRONTRACK_"

// Config holds all server settings
type Config struct {
	Addr     string   `koanf:"addr" yaml:"addr"`
	Database Database `koanf:"database" yaml:"database"`
	Timeouts Timeouts `koanf:"timeouts" yaml:"timeouts"`
}

// Database holds storage settings
type Database struct {
	Path string `koanf:"path" yaml:"path"`
}

// Timeouts holds the HTTP server timeouts
type Timeouts struct {
	Read  time.Duration `koanf:"read" yaml:"read"`
	Write time.Duration `koanf:"write" yaml:"write"`
	Idle  time.Duration `koanf:"idle" yaml:"idle"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     ":3000",
		Database: Database{Path: "./irontrack.db"},
		Timeouts: Timeouts{
			Read:  10 * time.Second,
			Write: 30 * time.Second,
			Idle:  60 * time.Second,
		},
	}
}

// Flags returns the flag set accepted by the server binary. Flag names use
// dotted paths matching the config keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("irontrack-server", pflag.ExitOnError)
	fs.String("addr", ":3000", "HTTP listen address")
	fs.String("database.path", "./irontrack.db", "SQLite database path")
	fs.String("config", "", "path to a YAML config file")
	fs.String("write-config", "", "write the effective configuration to this path and exit")
	return fs
}

// Load merges configuration sources in precedence order: defaults, then the
// YAML file when one is found, then environment, then flags.
func Load(flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Set("addr", defaults.Addr); err != nil {
		return Config{}, err
	}
	if err := k.Set("database.path", defaults.Database.Path); err != nil {
		return Config{}, err
	}
	if err := k.Set("timeouts.read", defaults.Timeouts.Read.String()); err != nil {
		return Config{}, err
	}
	if err := k.Set("timeouts.write", defaults.Timeouts.Write.String()); err != nil {
		return Config{}, err
	}
	if err := k.Set("timeouts.idle", defaults.Timeouts.Idle.String()); err != nil {
		return Config{}, err
	}

	if path := findConfigPath(flags); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// IRONTRACK_DATABASE_PATH becomes database.path.
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
		return key, value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// findConfigPath resolves the config file location: the --config flag, then
// $IRONTRACK_CONFIG, then ./irontrack.yaml, then the user config directory.
// An empty return means no file.
func findConfigPath(flags *pflag.FlagSet) string {
	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			return path
		}
	}
	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("./irontrack.yaml"); err == nil {
		return "./irontrack.yaml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "irontrack", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
