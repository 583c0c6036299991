package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// Preferences holds per-user display and server settings.
type Preferences struct {
	Currency domain.CurrencyOptions `toml:"currency"`
	Output   OutputPreferences      `toml:"output"`
	Server   ServerPreferences      `toml:"server"`
}

// OutputPreferences holds report defaults.
type OutputPreferences struct {
	Format    string `toml:"format"`
	Directory string `toml:"directory,omitempty"`
	Trace     bool   `toml:"trace"`
}

// ServerPreferences holds API server defaults.
type ServerPreferences struct {
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency: domain.DefaultCurrency(),
		Output: OutputPreferences{
			Format: "console",
			Trace:  true,
		},
		Server: ServerPreferences{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// PreferencesDir returns the XDG-compliant config directory.
func PreferencesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "investcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "investcalc")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(PreferencesDir(), "config.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(PreferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	if err := NewInputParser().validateCurrency(&prefs.Currency); err != nil {
		return DefaultPreferences(), fmt.Errorf("preferences currency: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	dir := PreferencesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}

// PreferencesExist returns true if a preferences file exists on disk.
func PreferencesExist() bool {
	_, err := os.Stat(PreferencesPath())
	return err == nil
}
