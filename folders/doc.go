// SPDX-License-Identifier: MIT

// Package folders resolves the three directories an application reads and
// writes: a base directory chosen by the caller, and the per-user config and
// data directories of the platform, as reported by github.com/adrg/xdg.
//
//	linux    $XDG_CONFIG_HOME/<app>   $XDG_DATA_HOME/<app>   (~/.config, ~/.local/share)
//	darwin   ~/Library/Application Support/<qualifier>.<org>.<app>   (both)
//	windows  %LocalAppData%\<org>\<app>\config   %LocalAppData%\<org>\<app>\data
//
// On Linux the application name is lowercased with spaces removed; on macOS
// spaces in each component become dashes.
//
// FromEnv overlays LVLGRID_BASE_DIR, LVLGRID_CONFIG_DIR and LVLGRID_DATA_DIR
// on top of the platform defaults. Values may reference other variables
// (${HOME}/saves).
//
// Location bridges a directory to saveload so persisted files land in the
// right place:
//
//	f, _ := folders.FromEnv(".", "org", "Example", "My Game")
//	loc := f.Location(folders.Data, saveload.JSON, true)
//	err := saveload.Save(loc, "slot1", state)
package folders
