package localization

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"scrobbler/internal/logging"
)

// StringSource supplies localized runtime text for a numeric string ID. It
// stands in for the host's string table; Table is the file-backed
// implementation.
type StringSource interface {
	LocalizedString(id int) (string, bool)
}

// Mapper resolves canonical English UI strings to localized text. It is
// immutable after construction; build one during startup and inject it into
// callers needing lookups.
type Mapper struct {
	mapping map[string]int
	source  StringSource
	logger  *slog.Logger
}

// NewMapper derives the canonical string mapping from the catalog at
// catalogPath, consulting and maintaining the persisted cache at cachePath.
//
// A missing catalog is fatal and reported as ErrMissingCatalog. A missing,
// corrupt, or stale cache silently degrades to a full catalog parse followed
// by a cache rewrite. A failed cache write is logged as a warning but does
// not fail construction; the only cost is a repeated parse on next startup.
func NewMapper(catalogPath, cachePath string, source StringSource, logger *slog.Logger) (*Mapper, error) {
	logger = logging.NewComponentLogger(logger, "localization")

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCatalog, catalogPath)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	sum := sha1.Sum(data)
	checksum := hex.EncodeToString(sum[:])

	if record, err := readCacheRecord(cachePath); err == nil && record.Checksum == checksum {
		logger.Debug("string mapping cache hit",
			logging.Int("entry_count", len(record.Strings)),
			logging.String("checksum", checksum))
		return &Mapper{mapping: record.Strings, source: source, logger: logger}, nil
	} else if err != nil {
		logger.Debug("string mapping cache unusable, rebuilding", logging.Error(err))
	} else {
		logger.Debug("catalog changed, rebuilding string mapping",
			logging.String("cached_checksum", record.Checksum),
			logging.String("checksum", checksum))
	}

	mapping, duplicates := parseMapping(data)
	for _, duplicate := range duplicates {
		logger.Warn("duplicate canonical string in catalog, last occurrence wins",
			logging.String("text", duplicate))
	}

	if err := writeCacheRecord(cachePath, cacheRecord{Checksum: checksum, Strings: mapping}); err != nil {
		logger.Warn("failed to persist string mapping cache, next startup will re-parse the catalog",
			logging.String("path", cachePath),
			logging.Error(err))
	}

	logger.Debug("string mapping rebuilt",
		logging.Int("entry_count", len(mapping)),
		logging.String("checksum", checksum))

	return &Mapper{mapping: mapping, source: source, logger: logger}, nil
}

// Gettext returns the localized text for a canonical English UI string.
// An unknown canonical string is a content defect and yields
// ErrUnknownString. A string whose ID has no localized text falls back to
// the canonical text itself, matching gettext behaviour.
func (m *Mapper) Gettext(canonical string) (string, error) {
	id, ok := m.mapping[canonical]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownString, canonical)
	}
	if m.source != nil {
		if text, ok := m.source.LocalizedString(id); ok {
			return text, nil
		}
		m.logger.Debug("no localized text for string id, using canonical text",
			logging.Int("string_id", id))
	}
	return canonical, nil
}

// StringID returns the numeric ID for a canonical string.
func (m *Mapper) StringID(canonical string) (int, bool) {
	id, ok := m.mapping[canonical]
	return id, ok
}

// Count returns the number of canonical strings in the mapping.
func (m *Mapper) Count() int {
	return len(m.mapping)
}

// Entry is one canonical string with its numeric ID.
type Entry struct {
	ID   int
	Text string
}

// Entries returns the full mapping sorted by ID, for inspection tooling.
func (m *Mapper) Entries() []Entry {
	entries := make([]Entry, 0, len(m.mapping))
	for text, id := range m.mapping {
		entries = append(entries, Entry{ID: id, Text: text})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}
