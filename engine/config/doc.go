// Package config loads the TOML settings shared by the material tools:
// where the project assets live, where ripped materials are written, how
// much undo history is kept and how verbose logging is.
//
// Settings are resolved from an explicit path, then ./anima-tools.toml,
// then ~/.config/anima-tools/config.toml. Missing files fall back to
// Default(). `anima-tools config init` writes the embedded sample.
package config
