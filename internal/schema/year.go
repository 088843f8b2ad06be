package schema

import (
	"regexp"
	"strconv"
	"time"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

// yearCandidates is the ordered list of date-like fields consulted when a
// record has no year. Only the first field present is tried; if its value
// does not parse the year stays unknown rather than falling through to
// the next candidate.
var yearCandidates = []string{
	models.FieldPublicationDate,
	"seendate",
	"date",
}

// dateLayouts covers the formats the collectors are known to emit.
// 20060102T150405Z is the GDELT seendate format.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"20060102T150405Z",
	"2006/01/02",
	"02 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractYear returns a copy of the record with a year field derived from
// the first date-like field present, plus the name of the field consulted
// (empty if none was). Records that already carry a year are returned
// unchanged, so re-running is a no-op. An unparseable date leaves the
// year field absent; the year-range filter removes such records later.
func ExtractYear(raw models.Raw) (models.Raw, string) {
	if _, ok := raw[models.FieldYear]; ok {
		return raw, ""
	}

	out := make(models.Raw, len(raw)+1)
	for k, v := range raw {
		out[k] = v
	}

	for _, field := range yearCandidates {
		value, ok := out[field]
		if !ok {
			continue
		}

		if year, parsed := ParseYear(value); parsed {
			out[models.FieldYear] = strconv.Itoa(year)
		}

		return out, field
	}

	return out, ""
}

// ParseYear permissively extracts a 4-digit year from a date-like string:
// known layouts first, then a bare year scan.
func ParseYear(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Year(), true
		}
	}

	if m := yearPattern.FindString(value); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			return year, true
		}
	}

	return 0, false
}
