package config

import (
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/lerp/errors"
)

// New creates a Viper instance with defaults and environment binding.
// Flags can be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("LERPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// Load reads lerpgen.toml (if one is found above dir) into v and
// unmarshals the result. It returns the path of the file used, if any.
func Load(v *viper.Viper, dir string) (*Config, string, error) {
	path := FindProjectConfig(dir)
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, path, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindProjectConfig searches for lerpgen.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found
func FindProjectConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// Validate checks that generated code can be built from the settings
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Param) {
		return errors.WithHint(
			errors.Newf("invalid param type %q", c.Param),
			"use float32, float64 or a named float type of the target package")
	}
	if !token.IsIdentifier(c.Method) || !token.IsExported(c.Method) {
		return errors.Newf("invalid method name %q: must be an exported identifier", c.Method)
	}
	if c.Tag == "" || strings.ContainsAny(c.Tag, " \t:\"`") {
		return errors.Newf("invalid tag key %q", c.Tag)
	}
	if c.Runtime == "" {
		return errors.New("runtime import path must not be empty")
	}
	return nil
}
