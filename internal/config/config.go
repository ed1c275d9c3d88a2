// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override configuration keys.
const EnvPrefix = "AMORTIZE"

// Configuration holds all configuration for amortize.
type Configuration struct {
	Loans   []Loan        `yaml:"loans"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// WatchConfig holds options for recomputing on configuration changes.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := NewViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return Decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := NewViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return Decode(v)
}

// NewViper returns a viper instance set up with the configuration defaults
// and environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("watch.debounce", constants.DefaultDebounce.String())
	return v
}

// Decode unmarshals the settings held by v into a Configuration. Frequencies
// may be written as numbers or names and durations as Go duration strings.
func Decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in a default loan when none is configured, names
// unnamed loans, pays monthly when no payment frequency is given, and
// restores a usable debounce.
func (c *Configuration) ApplyDefaults() {
	if len(c.Loans) == 0 {
		c.Loans = []Loan{DefaultLoan()}
	}
	for i := range c.Loans {
		if strings.TrimSpace(c.Loans[i].Name) == "" {
			c.Loans[i].Name = fmt.Sprintf("loan-%d", i+1)
		}
		if c.Loans[i].PaymentFrequency == 0 {
			c.Loans[i].PaymentFrequency = constants.DefaultPaymentFrequency
		}
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = constants.DefaultDebounce
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	seen := make(map[string]int, len(c.Loans))
	for i, loan := range c.Loans {
		if first, ok := seen[loan.Name]; ok {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' at position %d has the same name as position %d",
				loan.Name, i+1, first+1))
		} else {
			seen[loan.Name] = i
		}

		for _, warning := range loan.Terms().Warnings() {
			warnings = append(warnings, fmt.Sprintf("Loan '%s': %s", loan.Name, warning))
		}
	}

	return warnings
}
