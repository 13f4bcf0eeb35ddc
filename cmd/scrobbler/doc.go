// Package main hosts the scrobbler CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the localization mapper (string
// lookups, cache maintenance, catalog dumps) and the Kodi video library
// queries for inspection from a terminal. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
