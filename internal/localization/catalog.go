package localization

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
)

// Catalog records are line-oriented pairs (optionally followed by a
// translation):
//
//	msgctxt "#30000"
//	msgid "Some English text"
//	msgstr "Eine deutsche Übersetzung"
//
// Multi-line continuation strings are not used in Kodi string catalogs and
// are not supported here.
var (
	msgctxtRe = regexp.MustCompile(`^msgctxt "#(\d+)"\r?$`)
	msgidRe   = regexp.MustCompile(`^msgid "(.*)"\r?$`)
	msgstrRe  = regexp.MustCompile(`^msgstr "(.*)"\r?$`)
)

type catalogRecord struct {
	id     int
	msgid  string
	msgstr string
}

// parseRecords extracts all well-formed records from raw catalog bytes.
// Anything that does not match the consecutive msgctxt/msgid pattern is
// ignored, including the PO header block.
func parseRecords(data []byte) []catalogRecord {
	var records []catalogRecord

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending *catalogRecord
	for scanner.Scan() {
		line := scanner.Text()

		if m := msgctxtRe.FindStringSubmatch(line); m != nil {
			if pending != nil && pending.msgid != "" {
				records = append(records, *pending)
			}
			pending = nil
			id, err := strconv.Atoi(m[1])
			if err == nil {
				pending = &catalogRecord{id: id}
			}
			continue
		}

		if pending != nil && pending.msgid == "" {
			if m := msgidRe.FindStringSubmatch(line); m != nil {
				pending.msgid = m[1]
				if pending.msgid == "" {
					// Empty source string, record is unusable.
					pending = nil
				}
				continue
			}
			pending = nil
			continue
		}

		if pending != nil {
			if m := msgstrRe.FindStringSubmatch(line); m != nil {
				pending.msgstr = m[1]
			}
			records = append(records, *pending)
			pending = nil
			continue
		}
	}
	if pending != nil && pending.msgid != "" {
		records = append(records, *pending)
	}

	return records
}

// parseMapping builds the canonical string to ID mapping. Duplicate canonical
// strings are resolved last-write-wins and reported so callers can flag the
// data-quality problem.
func parseMapping(data []byte) (mapping map[string]int, duplicates []string) {
	records := parseRecords(data)
	mapping = make(map[string]int, len(records))
	for _, rec := range records {
		if _, seen := mapping[rec.msgid]; seen {
			duplicates = append(duplicates, rec.msgid)
		}
		mapping[rec.msgid] = rec.id
	}
	return mapping, duplicates
}

// parseTable builds the ID to localized text table. The translated msgstr is
// preferred; the canonical msgid is used when no translation is present, which
// makes the canonical catalog itself a valid last-resort table.
func parseTable(data []byte) map[int]string {
	records := parseRecords(data)
	table := make(map[int]string, len(records))
	for _, rec := range records {
		text := rec.msgstr
		if text == "" {
			text = rec.msgid
		}
		table[rec.id] = text
	}
	return table
}
