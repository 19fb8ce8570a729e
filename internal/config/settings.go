package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// Settings are the application-level knobs that live outside the profile
// file: how to render, which strategy to lead with, log verbosity. They
// come from flags, environment variables (NWADVISOR_*), or an optional
// settings file, in that precedence order.
type Settings struct {
	Strategy     domain.Strategy `mapstructure:"strategy"`
	OutputFormat string          `mapstructure:"output_format"`
	Debug        bool            `mapstructure:"debug"`
	NoColor      bool            `mapstructure:"no_color"`
}

// SupportedFormats lists the renderers the CLI can produce.
var SupportedFormats = []string{"console", "json", "csv"}

// NewViper builds a viper instance with the defaults and environment
// binding the CLI expects. Callers bind their flags on top.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("strategy", string(domain.StrategyAvalanche))
	v.SetDefault("output_format", "console")
	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("NWADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads and validates settings from a configured viper
// instance. An optional settings file is merged when the path is set.
func LoadSettings(v *viper.Viper, settingsFile string) (*Settings, error) {
	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks the settings before any command runs.
func (s *Settings) Validate() error {
	if !domain.ValidStrategy(s.Strategy) {
		return fmt.Errorf("unknown strategy %q (valid: avalanche, snowball, hybrid, minimum)", s.Strategy)
	}
	for _, f := range SupportedFormats {
		if s.OutputFormat == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (valid: %s)", s.OutputFormat, strings.Join(SupportedFormats, ", "))
}
