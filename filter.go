package spend

import "strings"

// Filter is the set of active constraints used to derive a subsequence of
// the ledger. The zero value of each field means "no constraint"; the zero
// Filter matches everything.
//
// Filters are ephemeral: they are never persisted.
type Filter struct {
	Query    string // case-insensitive substring of note or category
	Category string // exact category equality
	From     Date   // inclusive lower date bound
	To       Date   // inclusive upper date bound
}

// IsZero reports whether no constraint is active.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Category == "" && f.From.IsZero() && f.To.IsZero()
}

// Matches reports whether the record passes every active constraint.
func (f Filter) Matches(r Record) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if !f.From.IsZero() && r.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.Date.After(f.To) {
		return false
	}
	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		note := strings.ToLower(r.Note)
		category := strings.ToLower(r.Category)
		if !strings.Contains(note, query) && !strings.Contains(category, query) {
			return false
		}
	}
	return true
}

// Apply returns the subsequence of ledger records matching the filter,
// preserving ledger order. It is a pure function: the same ledger and
// filter always yield the same result.
func Apply(l *Ledger, f Filter) []Record {
	var out []Record
	for _, r := range l.Records(f.Matches) {
		out = append(out, r)
	}
	return out
}
