package query

import (
	"strings"

	"github.com/aretw0/gridview/pkg/domain"
)

// exclusionKeywords mark categories that are bookkeeping entries rather
// than renewable initiatives. Matching is case-insensitive substring.
var exclusionKeywords = []string{"consumption", "verification", "sold"}

// FilterRenewable returns the working dataset: every record whose Source
// does not contain an exclusion keyword. A record with an empty Source has
// no category to match and is retained. Runs once per process lifetime.
func FilterRenewable(records []domain.Record) []domain.Record {
	working := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if Excluded(r.Source) {
			continue
		}
		working = append(working, r)
	}
	return working
}

// Excluded reports whether a source label matches the exclusion pattern.
func Excluded(source string) bool {
	s := strings.ToLower(source)
	for _, kw := range exclusionKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
