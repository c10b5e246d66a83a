/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package prefs keeps the settings a user last scheduled with so the next
// session starts from them.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mikeb26/teetimes/teetime"
)

const (
	appDir   = "teetimes"
	fileName = "settings.toml"
)

// File is the on-disk layout of the preferences file.
type File struct {
	Settings teetime.Settings `toml:"settings"`
	// Area is the province code used for sunrise and sunset lookups.
	Area string `toml:"area,omitempty"`
}

// ConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// Path is the default location of the preferences file.
func Path() string {
	return filepath.Join(ConfigHome(), appDir, fileName)
}

// Load reads the preferences at path. A missing file is not an error and
// yields empty preferences.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, fmt.Errorf("prefs.Load: path is empty")
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("prefs.Load: failed to decode %v: %w", path, err)
	}
	return f, nil
}

// Save writes f to path, creating its directory when needed.
func Save(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs.Save: %w", err)
	}
	tmp := path + ".tmp"
	fp, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("prefs.Save: %w", err)
	}
	if err := toml.NewEncoder(fp).Encode(f); err != nil {
		fp.Close()
		os.Remove(tmp)
		return fmt.Errorf("prefs.Save: failed to encode: %w", err)
	}
	if err := fp.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("prefs.Save: %w", err)
	}

	return os.Rename(tmp, path)
}

// Reset removes the preferences file. Removing a missing file succeeds.
func Reset(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("prefs.Reset: %w", err)
	}
	return nil
}

// Apply layers explicitly set values over the saved ones.
func (f File) Apply(explicit teetime.Settings) teetime.Settings {
	return explicit.Merge(f.Settings)
}
