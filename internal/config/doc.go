// Package config loads, normalizes, and validates mediashelf configuration.
//
// Configuration is TOML with layered resolution: an explicit --config path,
// then ~/.config/mediashelf/config.toml, then a project-local
// mediashelf.toml. Unset values fall back to repository defaults, and all
// path fields are tilde-expanded and made absolute before use.
package config
