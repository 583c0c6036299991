package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "investcalc", "config.toml"), PreferencesPath())
}

func TestLoadPreferences_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
	assert.False(t, PreferencesExist())
}

func TestSaveAndLoadPreferences(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := DefaultPreferences()
	prefs.Currency = domain.CurrencyOptions{Symbol: "$", Grouping: domain.GroupingIndian, DecimalScale: 2}
	prefs.Output.Format = "csv"
	prefs.Server.Port = "9090"
	require.NoError(t, SavePreferences(prefs))
	assert.True(t, PreferencesExist())

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferences_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(PreferencesDir(), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("[output]\nformat = \"json\"\n"), 0o600))

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "json", prefs.Output.Format)
	assert.Equal(t, "₹", prefs.Currency.Symbol)
	assert.Equal(t, "8080", prefs.Server.Port)
}

func TestLoadPreferences_Invalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(PreferencesDir(), 0o755))

	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("not = [valid"), 0o600))
	_, err := LoadPreferences()
	assert.ErrorContains(t, err, "parsing preferences")

	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("[currency]\ngrouping = \"swiss\"\n"), 0o600))
	prefs, err := LoadPreferences()
	assert.ErrorContains(t, err, "preferences currency")
	assert.Equal(t, DefaultPreferences(), prefs)
}
