package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"bindgen-core/internal/errors"
)

// EnvPrefix prefixes environment overrides: BINDGEN_CRATE_NAME sets
// crate.name.
const EnvPrefix = "BINDGEN"

// Load reads path, or FileName in the working directory when path is
// empty and the file exists, then applies environment overrides. The
// result is not validated.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		if _, err := os.Stat(FileName); err == nil {
			path = FileName
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return &c, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// WriteFile writes c as TOML. An existing file is only replaced when
// overwrite is set.
func WriteFile(c *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to replace it")
		}
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}

	return nil
}

// Encode writes c to w as TOML.
func Encode(w io.Writer, c *Config) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}
