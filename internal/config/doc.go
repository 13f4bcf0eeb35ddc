// Package config loads, normalizes, and validates scrobbler configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and derives the addon resource locations the
// localization layer needs: the canonical strings.po catalog inside the addon
// directory and the mapping cache inside the profile directory.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
