// Package snooze provides embedded assets for the snooze CLI.
//
// The root package exists solely to embed [config.default.toml] via
// [DefaultConfigTOML]. The main package copies this file into the user's
// config directory on first run to seed defaults.
package snooze

import _ "embed"

// DefaultConfigTOML holds the raw bytes of config.default.toml, embedded at
// build time. cmd/snooze writes this file to the config directory when no
// config file exists yet.
//
//go:embed config.default.toml
var DefaultConfigTOML []byte
