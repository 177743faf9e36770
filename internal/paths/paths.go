// Package paths centralizes file and directory names used across the project.
// All config directory file names are defined here as the single source of truth.
package paths

import "path/filepath"

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Config directory file names.
const (
	ConfigFile = "config.toml"
	LogFile    = "snooze.log"
)

// Config directory locations.
const (
	// ConfigDirRel is the directory name under the platform config root
	// (os.UserConfigDir), e.g. ~/.config/snooze on Linux.
	ConfigDirRel = "snooze"
	// FallbackDirRel is the directory name under $HOME used when the
	// platform config root cannot be determined.
	FallbackDirRel = ".snooze"
)

// ///////////////////////////////////////////////
// ConfigDir
// ///////////////////////////////////////////////

// ConfigDir provides path construction methods rooted at a config directory.
type ConfigDir struct {
	Root string
}

// Config returns the full path to the config file.
func (d ConfigDir) Config() string { return filepath.Join(d.Root, ConfigFile) }

// Log returns the full path to the log file.
func (d ConfigDir) Log() string { return filepath.Join(d.Root, LogFile) }
