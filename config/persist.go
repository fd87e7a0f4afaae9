package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/lerp/errors"
)

const fileHeader = `# lerpgen settings. Flags and LERPGEN_* environment variables take precedence.
# This file applies to every package below the directory it is in.

`

// Save writes cfg to path as TOML. An existing file is only replaced when
// overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Newf("%s already exists", path),
				"pass --force to replace it")
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}
