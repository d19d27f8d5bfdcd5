// Package config loads default settings for the challenge CLI.
//
// Settings come from, in increasing priority: built-in defaults, a YAML
// config file, and CHALLENGE_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CHALLENGE_KEY.
const EnvPrefix = "CHALLENGE"

// DefaultFileName is the config file looked up in the home directory when no
// explicit path is given.
const DefaultFileName = ".challenge.yaml"

// Output formats accepted by Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidFormat is returned for an unsupported output format.
var ErrInvalidFormat = errors.New("invalid output format")

// Config holds CLI defaults.
type Config struct {
	Key     string `mapstructure:"key"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatText,
	}
}

// Load reads configuration from path, or from $HOME/.challenge.yaml if path is
// empty. A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("key", defaults.Key)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultFileName)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	return ValidateFormat(c.Format)
}

// ValidateFormat reports whether format is one of the supported output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrInvalidFormat, format, FormatText, FormatJSON, FormatYAML)
	}
}
