// SPDX-License-Identifier: MIT

package folders

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/lvlgrid"
	"github.com/katalvlaran/lvlgrid/saveload"
)

// Folders holds the resolved base, config and data directories.
type Folders struct {
	Base   string `env:"BASE_DIR,expand"`
	Config string `env:"CONFIG_DIR,expand"`
	Data   string `env:"DATA_DIR,expand"`
}

// envPrefix namespaces the override variables.
const envPrefix = "LVLGRID_"

// Root names one of the three directories.
type Root uint8

const (
	Base Root = iota
	Config
	Data
)

func (r Root) String() string {
	switch r {
	case Base:
		return "base"
	case Config:
		return "config"
	case Data:
		return "data"
	default:
		return fmt.Sprintf("Root(%d)", uint8(r))
	}
}

// New resolves the per-user config and data directories for the given
// project identity from xdg.ConfigHome and xdg.DataHome. base is used as
// given. The xdg roots are read at process start; call xdg.Reload after
// changing XDG_* or HOME at runtime.
func New(base, qualifier, organization, application string) (Folders, error) {
	if strings.TrimSpace(application) == "" {
		return Folders{}, fmt.Errorf("New(%q): %w", application, ErrNoApplication)
	}
	if xdg.ConfigHome == "" || xdg.DataHome == "" {
		return Folders{}, fmt.Errorf("New(%q): %w", application, ErrNoUserDir)
	}

	f := Folders{Base: base}
	switch runtime.GOOS {
	case "darwin", "ios":
		p := macProject(qualifier, organization, application)
		f.Config, f.Data = filepath.Join(xdg.ConfigHome, p), filepath.Join(xdg.DataHome, p)
	case "windows":
		p := filepath.Join(organization, application)
		f.Config, f.Data = filepath.Join(xdg.ConfigHome, p, "config"), filepath.Join(xdg.DataHome, p, "data")
	default:
		p := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(application), " ", ""))
		f.Config, f.Data = filepath.Join(xdg.ConfigHome, p), filepath.Join(xdg.DataHome, p)
	}

	return f, nil
}

// FromEnv is New followed by Overlay.
func FromEnv(base, qualifier, organization, application string) (Folders, error) {
	f, err := New(base, qualifier, organization, application)
	if err != nil {
		return Folders{}, err
	}
	return f.Overlay()
}

// Overlay returns f with every directory whose LVLGRID_* variable is set
// replaced by that variable's value. Unset variables leave f unchanged.
func (f Folders) Overlay() (Folders, error) {
	if err := env.ParseWithOptions(&f, env.Options{Prefix: envPrefix}); err != nil {
		return Folders{}, fmt.Errorf("Folders.Overlay: %w: %w", ErrEnv, err)
	}
	lvlgrid.Logger().Debug("folders: resolved", "base", f.Base, "config", f.Config, "data", f.Data)

	return f, nil
}

// Dir returns the directory named by r. An unknown Root yields "".
func (f Folders) Dir(r Root) string {
	switch r {
	case Base:
		return f.Base
	case Config:
		return f.Config
	case Data:
		return f.Data
	default:
		return ""
	}
}

// Path joins name onto the directory named by r.
func (f Folders) Path(r Root, name string) string {
	return filepath.Join(f.Dir(r), name)
}

func (f Folders) BasePath(name string) string   { return f.Path(Base, name) }
func (f Folders) ConfigPath(name string) string { return f.Path(Config, name) }
func (f Folders) DataPath(name string) string   { return f.Path(Data, name) }

// Read returns the contents of name under r.
func (f Folders) Read(r Root, name string) ([]byte, error) {
	b, err := os.ReadFile(f.Path(r, name))
	if err != nil {
		return nil, fmt.Errorf("Folders.Read(%v, %q): %w", r, name, err)
	}
	return b, nil
}

func (f Folders) ReadBase(name string) ([]byte, error)   { return f.Read(Base, name) }
func (f Folders) ReadConfig(name string) ([]byte, error) { return f.Read(Config, name) }
func (f Folders) ReadData(name string) ([]byte, error)   { return f.Read(Data, name) }

// Write stores data as name under r, creating missing parent directories.
func (f Folders) Write(r Root, name string, data []byte) error {
	path := f.Path(r, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Folders.Write(%v, %q): %w", r, name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Folders.Write(%v, %q): %w", r, name, err)
	}
	lvlgrid.Logger().Debug("folders: wrote", "root", r, "path", path, "bytes", len(data))

	return nil
}

func (f Folders) WriteBase(name string, data []byte) error   { return f.Write(Base, name, data) }
func (f Folders) WriteConfig(name string, data []byte) error { return f.Write(Config, name, data) }
func (f Folders) WriteData(name string, data []byte) error   { return f.Write(Data, name, data) }

// Location returns a saveload.Location rooted at the directory named by r.
func (f Folders) Location(r Root, format saveload.Format, pretty bool) saveload.Location {
	return saveload.NewLocation(f.Dir(r), format, pretty)
}

// macProject joins the non-empty identity parts as a reverse-DNS bundle name.
func macProject(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.ReplaceAll(strings.TrimSpace(p), " ", "-")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}
