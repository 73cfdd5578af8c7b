// SPDX-License-Identifier: MIT

package saveload

import (
	"path/filepath"
	"strings"
)

// Location is where a family of files lives and how it is encoded.
type Location struct {
	Directory string
	Extension string
	Format    Format
	Pretty    bool
}

// NewLocation returns a Location using format's default extension.
func NewLocation(dir string, format Format, pretty bool) Location {
	return Location{Directory: dir, Extension: format.Extension(), Format: format, Pretty: pretty}
}

// WithExtension returns a copy of l with a different extension. A leading
// dot is dropped; an empty extension means bare file names.
func (l Location) WithExtension(ext string) Location {
	l.Extension = strings.TrimPrefix(ext, ".")
	return l
}

// Path returns Directory/name with its extension replaced by l.Extension.
//
//	NewLocation("saves", JSON, false).Path("slot1")      → saves/slot1.json
//	NewLocation("saves", JSON, false).Path("slot1.bak")  → saves/slot1.json
//
// Path does not validate name: Path("") is Directory plus the extension.
// Save, Load, Exists and Remove reject a blank name with ErrEmptyName.
func (l Location) Path(name string) string {
	p := filepath.Join(l.Directory, name)
	p = strings.TrimSuffix(p, filepath.Ext(p))
	if l.Extension != "" {
		p += "." + l.Extension
	}
	return p
}
