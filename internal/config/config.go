// Package config loads rangeplay settings from defaults, an optional YAML file,
// RANGEPLAY_* environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rangeplay/internal/logging"
)

const EnvPrefix = "RANGEPLAY"

var ErrInvalid = errors.New("invalid configuration")

// Config is the full rangeplay configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Run      string         `mapstructure:"run"`
	FailFast bool           `mapstructure:"fail_fast"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := regexp.Compile(c.Run); err != nil {
		return fmt.Errorf("%w: run pattern: %w", ErrInvalid, err)
	}
	return nil
}

// Filter compiles the run pattern. An empty pattern selects everything and yields nil.
func (c *Config) Filter() *regexp.Regexp {
	if c.Run == "" {
		return nil
	}
	return regexp.MustCompile(c.Run)
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"no-color":   "log.no_color",
	"run":        "run",
	"fail-fast":  "fail_fast",
}

// Load resolves the configuration. file may be empty. flags may be nil; only the
// flags listed in flagKeys are bound.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (*Config, error) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.timestamp", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
