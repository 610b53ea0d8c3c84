package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
)

// flagBindings maps config keys to the persistent CLI flags that override them.
var flagBindings = map[string]string{
	"log.level":        "log-level",
	"metrics.textfile": "metrics-file",
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", string(constants.LogLevelInfo))
	v.SetDefault("log.format", "json")
	v.SetDefault("metrics.namespace", "certgen")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "certgen")
	v.SetDefault("tracing.sampling_rate", 1.0)
	v.SetDefault("keygen.key_format", string(constants.DefaultKeyFormat))
	v.SetDefault("p12.legacy", false)
}

// LoadConfig loads the configuration from defaults, an optional YAML file and
// command line flags, in increasing order of precedence. Environment variables
// are not read.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.ErrInvalidRequest("failed to read config file").
				WithCause(err).
				WithMetadata("config_file", configFile)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.ErrInvalidRequest("failed to bind flag").WithCause(err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ErrInvalidRequest("failed to unmarshal config").WithCause(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ErrInvalidRequest("invalid configuration").WithCause(err)
	}

	return &cfg, nil
}
