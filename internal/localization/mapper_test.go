package localization

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "strings.po")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestCacheRecordRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings-map.json")

	want := cacheRecord{
		Checksum: "abc123",
		Strings:  map[string]int{"Play": 30100, "Stop": 30102},
	}
	if err := writeCacheRecord(path, want); err != nil {
		t.Fatalf("writeCacheRecord failed: %v", err)
	}

	got, err := readCacheRecord(path)
	if err != nil {
		t.Fatalf("readCacheRecord failed: %v", err)
	}
	if got.Checksum != want.Checksum {
		t.Errorf("Checksum = %q, want %q", got.Checksum, want.Checksum)
	}
	if len(got.Strings) != len(want.Strings) {
		t.Fatalf("Strings has %d entries, want %d", len(got.Strings), len(want.Strings))
	}
	for text, id := range want.Strings {
		if got.Strings[text] != id {
			t.Errorf("Strings[%q] = %d, want %d", text, got.Strings[text], id)
		}
	}
}

func TestNewMapperBuildsAndPersistsMapping(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)
	cachePath := filepath.Join(dir, "strings-map.json")

	mapper, err := NewMapper(catalogPath, cachePath, nil, nil)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}
	if mapper.Count() != 2 {
		t.Errorf("Count = %d, want 2", mapper.Count())
	}
	if id, ok := mapper.StringID("Play"); !ok || id != 30100 {
		t.Errorf("StringID(Play) = %d, %v", id, ok)
	}

	record, err := readCacheRecord(cachePath)
	if err != nil {
		t.Fatalf("cache should be persisted: %v", err)
	}
	if record.Strings["Stop"] != 30102 {
		t.Errorf("persisted Strings[Stop] = %d, want 30102", record.Strings["Stop"])
	}
}

func TestNewMapperUsesFreshCacheWithoutReparse(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)
	cachePath := filepath.Join(dir, "strings-map.json")

	if _, err := NewMapper(catalogPath, cachePath, nil, nil); err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	// Plant an extra entry in the valid cache. A cache hit must adopt the
	// stored mapping verbatim and must not rewrite the file.
	record, err := readCacheRecord(cachePath)
	if err != nil {
		t.Fatalf("readCacheRecord failed: %v", err)
	}
	record.Strings["Planted"] = 999
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal planted record: %v", err)
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		t.Fatalf("write planted record: %v", err)
	}

	mapper, err := NewMapper(catalogPath, cachePath, nil, nil)
	if err != nil {
		t.Fatalf("NewMapper failed on cache hit: %v", err)
	}
	if id, ok := mapper.StringID("Planted"); !ok || id != 999 {
		t.Error("mapper should adopt the cached mapping without re-parsing")
	}

	after, err := readCacheRecord(cachePath)
	if err != nil {
		t.Fatalf("readCacheRecord after hit failed: %v", err)
	}
	if _, ok := after.Strings["Planted"]; !ok {
		t.Error("cache hit must not rewrite the cache file")
	}
}

func TestNewMapperRebuildsStaleCache(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)
	cachePath := filepath.Join(dir, "strings-map.json")

	stale := cacheRecord{
		Checksum: "0000000000000000000000000000000000000000",
		Strings:  map[string]int{"Obsolete": 1},
	}
	if err := writeCacheRecord(cachePath, stale); err != nil {
		t.Fatalf("seed stale cache: %v", err)
	}

	mapper, err := NewMapper(catalogPath, cachePath, nil, nil)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}
	if _, ok := mapper.StringID("Obsolete"); ok {
		t.Error("stale cache mapping must be discarded")
	}
	if _, ok := mapper.StringID("Play"); !ok {
		t.Error("mapping should be rebuilt from the catalog")
	}

	record, err := readCacheRecord(cachePath)
	if err != nil {
		t.Fatalf("readCacheRecord failed: %v", err)
	}
	if record.Checksum == stale.Checksum {
		t.Error("cache should be overwritten with the fresh checksum")
	}
	if _, ok := record.Strings["Play"]; !ok {
		t.Error("rebuilt cache should contain catalog strings")
	}
}

func TestNewMapperToleratesCorruptCache(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)
	cachePath := filepath.Join(dir, "strings-map.json")

	if err := os.WriteFile(cachePath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt cache: %v", err)
	}

	mapper, err := NewMapper(catalogPath, cachePath, nil, nil)
	if err != nil {
		t.Fatalf("NewMapper should recover from corrupt cache: %v", err)
	}
	if mapper.Count() != 2 {
		t.Errorf("Count = %d, want 2", mapper.Count())
	}
}

func TestNewMapperMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "strings-map.json")

	_, err := NewMapper(filepath.Join(dir, "nope.po"), cachePath, nil, nil)
	if !errors.Is(err, ErrMissingCatalog) {
		t.Fatalf("err = %v, want ErrMissingCatalog", err)
	}
	if _, statErr := os.Stat(cachePath); !os.IsNotExist(statErr) {
		t.Error("no cache file should be written when the catalog is missing")
	}
}

func TestGettextUnknownString(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)

	mapper, err := NewMapper(catalogPath, filepath.Join(dir, "cache.json"), nil, nil)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	if _, err := mapper.Gettext("NoSuchString"); !errors.Is(err, ErrUnknownString) {
		t.Errorf("err = %v, want ErrUnknownString", err)
	}
}

func TestGettextDelegatesToSource(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)

	localized := strings.Join([]string{
		`msgctxt "#30100"`,
		`msgid "Play"`,
		`msgstr "Abspielen"`,
	}, "\n")
	localizedPath := filepath.Join(dir, "de.po")
	if err := os.WriteFile(localizedPath, []byte(localized), 0o644); err != nil {
		t.Fatalf("write localized catalog: %v", err)
	}

	table := LoadTable(nil, localizedPath)
	mapper, err := NewMapper(catalogPath, filepath.Join(dir, "cache.json"), table, nil)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	text, err := mapper.Gettext("Play")
	if err != nil {
		t.Fatalf("Gettext failed: %v", err)
	}
	if text != "Abspielen" {
		t.Errorf("Gettext(Play) = %q, want Abspielen", text)
	}

	// "Stop" has no translation in the table, falls back to the canonical text.
	text, err = mapper.Gettext("Stop")
	if err != nil {
		t.Fatalf("Gettext failed: %v", err)
	}
	if text != "Stop" {
		t.Errorf("Gettext(Stop) = %q, want Stop", text)
	}
}

func TestInvalidateCache(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "strings-map.json")

	if err := InvalidateCache(cachePath); err != nil {
		t.Fatalf("InvalidateCache on missing file should succeed: %v", err)
	}

	if err := writeCacheRecord(cachePath, cacheRecord{Checksum: "x", Strings: map[string]int{}}); err != nil {
		t.Fatalf("writeCacheRecord failed: %v", err)
	}
	if err := InvalidateCache(cachePath); err != nil {
		t.Fatalf("InvalidateCache failed: %v", err)
	}
	if _, err := os.Stat(cachePath); !os.IsNotExist(err) {
		t.Error("cache file should be removed")
	}
}

func TestEntriesSortedByID(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeCatalog(t, dir, sampleCatalog)

	mapper, err := NewMapper(catalogPath, filepath.Join(dir, "cache.json"), nil, nil)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	entries := mapper.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != 30100 || entries[1].ID != 30102 {
		t.Errorf("entries not sorted by ID: %+v", entries)
	}
}
