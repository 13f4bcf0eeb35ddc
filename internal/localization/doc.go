// Package localization emulates GNU gettext on top of Kodi-style strings.po
// catalogs by mapping canonical English UI strings to their numeric string IDs.
//
// The mapping is derived from the addon's canonical catalog and persisted to a
// JSON cache keyed by a checksum of the catalog bytes, so process startup
// normally skips re-parsing. Any catalog change invalidates the whole cache
// and triggers a transparent rebuild; a corrupt or missing cache degrades to
// the same rebuild path.
//
// Localized runtime text comes from a StringSource, typically a Table built
// from the localized strings.po catalogs with a locale fallback chain.
package localization
