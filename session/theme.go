package session

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const themeFileName = "theme.yaml"

// ThemeStore persists the dark-mode preference across restarts. It is a
// single boolean, stored in its own small file under the data directory.
type ThemeStore struct {
	v    *viper.Viper
	path string
}

func NewThemeStore(dataDir string) (*ThemeStore, error) {
	if err := os.MkdirAll(dataDir, 0770); err != nil {
		return nil, errors.Wrap(err, "failed to create theme data directory")
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("dark_mode", false)

	path := filepath.Join(dataDir, themeFileName)
	v.SetConfigFile(path)
	// A missing file just means the default applies.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "failed to read theme preference")
	}

	return &ThemeStore{v: v, path: path}, nil
}

func (t *ThemeStore) DarkMode() bool {
	return t.v.GetBool("dark_mode")
}

// SetDarkMode stores and persists the preference immediately, so a crash
// between toggle and exit loses nothing.
func (t *ThemeStore) SetDarkMode(enabled bool) error {
	t.v.Set("dark_mode", enabled)
	if err := t.v.WriteConfigAs(t.path); err != nil {
		return errors.Wrap(err, "failed to persist theme preference")
	}
	return nil
}

// Toggle flips the preference and returns the new value.
func (t *ThemeStore) Toggle() (bool, error) {
	next := !t.DarkMode()
	if err := t.SetDarkMode(next); err != nil {
		return t.DarkMode(), err
	}
	return next, nil
}
