package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// cacheRecord is the persisted derived artifact: the canonical string mapping
// plus the checksum of the catalog bytes it was built from. The record is
// always replaced wholesale, never patched.
type cacheRecord struct {
	Checksum string         `json:"checksum"`
	Strings  map[string]int `json:"strings"`
}

// readCacheRecord loads a cache record from disk. Any failure (absent file,
// truncated JSON, wrong shape) is returned to the caller, which treats it as
// a cache miss.
func readCacheRecord(path string) (cacheRecord, error) {
	var record cacheRecord

	data, err := os.ReadFile(path)
	if err != nil {
		return record, fmt.Errorf("read cache file: %w", err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("parse cache file: %w", err)
	}
	if record.Checksum == "" || record.Strings == nil {
		return record, fmt.Errorf("cache file %s has incomplete record", filepath.Base(path))
	}
	return record, nil
}

// writeCacheRecord persists a cache record atomically, holding an advisory
// file lock so two processes sharing one profile directory cannot interleave
// writes. The lock is advisory only; a write race at worst produces a corrupt
// file that the next startup discards and rebuilds.
func writeCacheRecord(path string, record cacheRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock cache file: %w", err)
	}
	defer lock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// InvalidateCache removes the persisted mapping cache so the next mapper
// construction rebuilds it from the catalog. A missing cache file is not an
// error.
func InvalidateCache(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}
