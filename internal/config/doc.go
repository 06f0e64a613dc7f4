// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.yapper/yapper.toml or OS-specific config directory)
// 3. Project config file (yapper.toml or .yapper.toml in the working directory)
// 4. Environment variables (YAPPER_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Config files are checked against an embedded JSON Schema before they are
// merged; the merged result is checked against the same schema.
//
// User-level config locations:
// - ~/.yapper/yapper.toml (preferred)
// - Windows: %APPDATA%\yapper\yapper.toml
// - macOS: ~/Library/Application Support/yapper/yapper.toml
// - Linux/BSD: $XDG_CONFIG_HOME/yapper/yapper.toml or ~/.config/yapper/yapper.toml
package config
