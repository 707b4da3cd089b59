// Package config loads woah's build configuration. Sources are layered with
// koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config at $XDG_CONFIG_HOME/woah/config.toml
//  3. project config: an explicit file, or woah.toml / .woah.toml
//  4. WOAH_ environment variables
//  5. caller overrides such as command-line flags
package config
