// Package config handles configuration management for dotaudit.
// It layers embedded defaults, an optional user file (TOML or YAML),
// DOTAUDIT_* environment variables and explicitly set command-line flags,
// in that order of increasing precedence.
package config
