package localization

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"

	"scrobbler/internal/logging"
)

// Table is a file-backed StringSource built from localized strings.po
// catalogs. Catalogs are consulted in the order given, so earlier paths win;
// appending the canonical catalog last gives gettext-style fallback to the
// source language.
type Table struct {
	strings map[int]string
}

// LoadTable parses the given catalogs into a Table. Unreadable catalogs are
// skipped with a debug log line so a missing translation resource never
// breaks startup; the resulting table may then be empty.
func LoadTable(logger *slog.Logger, paths ...string) *Table {
	logger = logging.NewComponentLogger(logger, "localization")

	table := &Table{strings: make(map[int]string)}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Debug("skipping unreadable localized catalog",
				logging.String("path", path),
				logging.Error(err))
			continue
		}
		added := 0
		for id, text := range parseTable(data) {
			if _, ok := table.strings[id]; ok {
				continue
			}
			table.strings[id] = text
			added++
		}
		logger.Debug("loaded localized catalog",
			logging.String("path", path),
			logging.Int("entry_count", added))
	}
	return table
}

// LocalizedString returns the runtime-language text for a string ID.
func (t *Table) LocalizedString(id int) (string, bool) {
	text, ok := t.strings[id]
	return text, ok
}

// Len returns the number of distinct string IDs in the table.
func (t *Table) Len() int {
	return len(t.strings)
}

// LocaleResources converts a BCP 47 language tag into Kodi language resource
// directory candidates, most specific first. "de-DE" yields
// resource.language.de_de followed by resource.language.de.
func LocaleResources(tag string) ([]string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse language tag %q: %w", tag, err)
	}

	base, _ := parsed.Base()
	lang := strings.ToLower(base.String())

	var resources []string
	if region, conf := parsed.Region(); conf >= language.High && region.IsCountry() {
		resources = append(resources, fmt.Sprintf("resource.language.%s_%s", lang, strings.ToLower(region.String())))
	}
	resources = append(resources, "resource.language."+lang)
	return resources, nil
}
