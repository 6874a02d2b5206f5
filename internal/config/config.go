// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package config resolves the settings of tokenint from flags, TOKENINT_*
// environment variables and an optional configuration file.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ironcore-dev/tokenint/internal/pipeline"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	EnvPrefix = "TOKENINT"

	DisciplineKey = "discipline"
	LogLevelKey   = "log-level"
	ConfigFileKey = "config"
)

type Config struct {
	Discipline pipeline.Discipline `mapstructure:"discipline"`
	LogLevel   string              `mapstructure:"log-level"`
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(DisciplineKey, string(pipeline.Finally), "Cleanup discipline, one of 'finally' or 'scoped'")
	fs.String(LogLevelKey, "error", "Level of the diagnostic log written to stderr")
	fs.String(ConfigFileKey, "", "Optional configuration file (yaml, toml or json)")
}

// Load resolves the configuration. Flags set on the command line win over
// environment variables, which win over the configuration file.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and normalizes the discipline name.
func (c *Config) Validate() error {
	discipline, err := pipeline.ParseDiscipline(string(c.Discipline))
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	c.Discipline = discipline

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid configuration: log level %q", c.LogLevel)
	}
	return nil
}
