package config

import (
	"fmt"

	"github.com/turtacn/certgen/pkg/constants"
)

// Config holds the application's configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	KeyGen  KeyGenConfig  `mapstructure:"keygen"`
	P12     P12Config     `mapstructure:"p12"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type MetricsConfig struct {
	// Textfile is written in Prometheus text format after each run when set.
	Textfile  string `mapstructure:"textfile"`
	Namespace string `mapstructure:"namespace"`
}

type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	ServiceName    string  `mapstructure:"service_name"`
	SamplingRate   float64 `mapstructure:"sampling_rate"`
}

type KeyGenConfig struct {
	KeyFormat string `mapstructure:"key_format"`
}

type P12Config struct {
	Legacy bool `mapstructure:"legacy"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	switch constants.KeyFormat(c.KeyGen.KeyFormat) {
	case constants.KeyFormatPKCS8, constants.KeyFormatRSA:
	default:
		return fmt.Errorf("unsupported key format %q (want %q or %q)",
			c.KeyGen.KeyFormat, constants.KeyFormatPKCS8, constants.KeyFormatRSA)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}

	if c.Tracing.Enabled && c.Tracing.JaegerEndpoint == "" {
		return fmt.Errorf("tracing.jaeger_endpoint is required when tracing is enabled")
	}
	if c.Tracing.SamplingRate < 0 || c.Tracing.SamplingRate > 1 {
		return fmt.Errorf("tracing.sampling_rate must be within [0, 1]")
	}

	return nil
}
