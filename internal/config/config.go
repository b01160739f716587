// Package config loads the application configuration from a TOML file in the
// user's config directory. Everything has a sensible default; the file is
// optional.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"leadlog/internal/model"
	"leadlog/internal/osutil"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "leadlog"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the directory holding the persisted documents.
	// Empty means the default location under the user config dir.
	DataDir string `toml:"data_dir"`
	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
	// DefaultRemind is the lead time applied to new important dates when
	// none is given ("48 hours", "1 week" or "2 weeks").
	DefaultRemind string `toml:"default_remind"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "warn",
		DefaultRemind: model.Remind1Week,
	}
}

// GetConfigPath returns the path to the config file, creating the config
// directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path. A missing file yields the
// defaults with no error; an unreadable or invalid file is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (use debug, info, warn or error)", c.LogLevel)
	}

	switch c.DefaultRemind {
	case "", model.Remind48Hours, model.Remind1Week, model.Remind2Weeks:
	default:
		return fmt.Errorf("invalid default_remind %q (use %q, %q or %q)",
			c.DefaultRemind, model.Remind48Hours, model.Remind1Week, model.Remind2Weeks)
	}

	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# leadlog configuration file

# Directory holding the journal documents. Empty uses the default
# location under your user config directory.
data_dir = ""

# Logging verbosity: debug, info, warn or error
log_level = "warn"

# Lead time for new important dates: "48 hours", "1 week" or "2 weeks"
default_remind = "1 week"
`
}
