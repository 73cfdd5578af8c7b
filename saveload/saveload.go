// SPDX-License-Identifier: MIT

package saveload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlgrid"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// checkName rejects names that Location.Path would turn into the directory.
func checkName(op, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s(%q): %w", op, name, ErrEmptyName)
	}
	return nil
}

// Save encodes v and writes it to loc.Path(name), creating the directory
// if needed. An existing file is overwritten.
func Save(loc Location, name string, v any) error {
	if err := checkName("Save", name); err != nil {
		return err
	}
	path := loc.Path(name)
	data, err := Marshal(loc.Format, loc.Pretty, v)
	if err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	if err = os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("Save(%q): %w: %w", path, ErrIO, err)
	}
	if err = os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("Save(%q): %w: %w", path, ErrIO, err)
	}
	lvlgrid.Logger().Debug("saveload: saved", "path", path, "format", loc.Format, "bytes", len(data))

	return nil
}

// Load reads loc.Path(name) and decodes it into a new T.
func Load[T any](loc Location, name string) (T, error) {
	var out T
	if err := checkName("Load", name); err != nil {
		return out, err
	}
	path := loc.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("Load(%q): %w: %w", path, ErrIO, err)
	}
	if err = Unmarshal(loc.Format, data, &out); err != nil {
		return out, fmt.Errorf("Load(%q): %w", path, err)
	}
	lvlgrid.Logger().Debug("saveload: loaded", "path", path, "format", loc.Format, "bytes", len(data))

	return out, nil
}

// Exists reports whether loc.Path(name) is present. A blank name is never
// present.
func Exists(loc Location, name string) bool {
	if checkName("Exists", name) != nil {
		return false
	}
	_, err := os.Stat(loc.Path(name))
	return err == nil
}

// Remove deletes loc.Path(name). Removing a missing file is not an error.
func Remove(loc Location, name string) error {
	if err := checkName("Remove", name); err != nil {
		return err
	}
	path := loc.Path(name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("Remove(%q): %w: %w", path, ErrIO, err)
	}
	lvlgrid.Logger().Debug("saveload: removed", "path", path)
	return nil
}
