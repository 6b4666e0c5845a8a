package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const desktopFileName = "tilemon.desktop"

// autostartDir returns the per-user autostart directory following the
// XDG convention.
func autostartDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "autostart")
}

// SetAutostart toggles the desktop launcher that starts tilemon at
// login, records the flag, and persists the settings.
func (s *Settings) SetAutostart(enabled bool) error {
	s.Autostart = enabled
	s.Save()
	if enabled {
		return writeDesktopFile(filepath.Join(autostartDir(), desktopFileName))
	}
	return removeDesktopFile(filepath.Join(autostartDir(), desktopFileName))
}

func writeDesktopFile(path string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	entry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=tilemon
Exec=%s
Terminal=true
Categories=System;Monitor;
X-GNOME-Autostart-enabled=true
`, exe)
	if err := os.WriteFile(path, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func removeDesktopFile(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}
