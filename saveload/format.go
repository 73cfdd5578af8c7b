// SPDX-License-Identifier: MIT

package saveload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the serialization.
type Format uint8

const (
	// JSON is encoding/json; pretty output is indented by two spaces.
	JSON Format = iota
	// YAML is gopkg.in/yaml.v3; pretty output is indented by two spaces,
	// compact output by four.
	YAML
	// TOML is github.com/BurntSushi/toml; pretty output indents table
	// bodies by two spaces, compact output not at all. The top-level value
	// must be a struct or a map.
	TOML
)

// Extension returns the default file extension, without a dot.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return ""
	}
}

func (f Format) String() string {
	if ext := f.Extension(); ext != "" {
		return ext
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// MarshalText encodes f by name.
func (f Format) MarshalText() ([]byte, error) {
	if f.Extension() == "" {
		return nil, fmt.Errorf("Format.MarshalText(%d): %w", uint8(f), ErrUnknownFormat)
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts "json", "yaml", "yml" or "toml", case-insensitive.
func (f *Format) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "json":
		*f = JSON
	case "yaml", "yml":
		*f = YAML
	case "toml":
		*f = TOML
	default:
		return fmt.Errorf("Format.UnmarshalText(%q): %w", b, ErrUnknownFormat)
	}
	return nil
}

// Marshal serializes v in format f. Output always ends in a newline.
func Marshal(f Format, pretty bool, v any) ([]byte, error) {
	switch f {
	case JSON:
		var (
			b   []byte
			err error
		)
		if pretty {
			b, err = json.MarshalIndent(v, "", "  ")
		} else {
			b, err = json.Marshal(v)
		}
		if err != nil {
			return nil, fmt.Errorf("Marshal(%v): %w: %w", f, ErrEncode, err)
		}
		return append(b, '\n'), nil

	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		if pretty {
			enc.SetIndent(2)
		} else {
			enc.SetIndent(4)
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("Marshal(%v): %w: %w", f, ErrEncode, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("Marshal(%v): %w: %w", f, ErrEncode, err)
		}
		return buf.Bytes(), nil

	case TOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		if !pretty {
			enc.Indent = ""
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("Marshal(%v): %w: %w", f, ErrEncode, err)
		}
		if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("Marshal(%v): %w", f, ErrUnknownFormat)
	}
}

// Unmarshal decodes data in format f into v, which must be a pointer.
func Unmarshal(f Format, data []byte, v any) error {
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	case TOML:
		err = toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("Unmarshal(%v): %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Unmarshal(%v): %w: %w", f, ErrDecode, err)
	}
	return nil
}
