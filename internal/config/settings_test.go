package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyAvalanche, settings.Strategy)
	assert.Equal(t, "console", settings.OutputFormat)
	assert.False(t, settings.Debug)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: snowball\noutput_format: json\ndebug: true\n"), 0o644))

	settings, err := LoadSettings(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategySnowball, settings.Strategy)
	assert.Equal(t, "json", settings.OutputFormat)
	assert.True(t, settings.Debug)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("NWADVISOR_STRATEGY", "hybrid")

	settings, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyHybrid, settings.Strategy)
}

func TestLoadSettingsValidation(t *testing.T) {
	t.Run("Unknown strategy", func(t *testing.T) {
		v := NewViper()
		v.Set("strategy", "lottery")
		_, err := LoadSettings(v, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown strategy")
	})

	t.Run("Unknown output format", func(t *testing.T) {
		v := NewViper()
		v.Set("output_format", "xml")
		_, err := LoadSettings(v, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("Missing settings file", func(t *testing.T) {
		_, err := LoadSettings(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
