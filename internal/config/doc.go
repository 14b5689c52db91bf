// Package config holds fg's persisted backend mode and optional settings.
//
// Both live in the fg config directory (see [storage.Dir]):
//
//   - config.json: the backend mode, {"mode": "git"} or {"mode": "gh"}.
//     Written by --setMode, read by every pass-through operation.
//   - settings.toml: optional defaults for pass-through flags given without
//     a value. Never written by fg.
//
// # Defaults
//
// A missing, unreadable or malformed config.json reads as mode "git". A
// missing settings.toml yields [Default]; a malformed one yields [Default]
// plus an error the caller reports as a warning.
//
// # Settings
//
//	# remote used by --pull and --push without a value
//	default_remote = "origin"
//	# path used by --add and --info without a value
//	default_path = "."
package config
