package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the gitdash config directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appName)
}

func prefPath(name string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}

func loadPref(name string) string {
	p := prefPath(name)
	if p == "" {
		return ""
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func savePref(name, value string) error {
	p := prefPath(name)
	if p == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value+"\n"), 0600)
}

// LoadTheme reads the saved theme name from disk. Returns empty string if not found.
func LoadTheme() string {
	return loadPref("theme")
}

// SaveTheme writes the theme name to disk.
func SaveTheme(name string) error {
	return savePref("theme", name)
}

// LoadPlatform reads the last selected platform slug. Returns empty string if not found.
func LoadPlatform() string {
	return loadPref("platform")
}

// SavePlatform remembers the selected platform slug.
func SavePlatform(slug string) error {
	return savePref("platform", slug)
}
